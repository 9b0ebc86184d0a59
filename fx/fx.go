// Package fx converts amounts between currencies.
package fx

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/advisor"
	"github.com/rs/zerolog"
)

// Converter converts an amount into another currency.
type Converter interface {
	Convert(ctx context.Context, amount advisor.Money, to string) (advisor.Money, error)
}

// Frankfurter converts amounts with the rates of the Frankfurter API
// (https://www.frankfurter.app), published by the European Central Bank.
type Frankfurter struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewFrankfurter returns a converter querying baseURL with client.
func NewFrankfurter(log zerolog.Logger, baseURL string, client *http.Client) *Frankfurter {
	if client == nil {
		client = Daily(log, "")
	}
	return &Frankfurter{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		log:     log.With().Str("client", "frankfurter").Logger(),
	}
}

/*
	{
	    "amount": 100.0,
	    "base": "EUR",
	    "date": "2025-09-12",
	    "rates": {
	        "USD": 117.35
	    }
	}
*/

// Convert implements Converter. Failures wrap advisor.ErrDataUnavailable,
// unknown currencies wrap advisor.ErrInvalidInput.
func (f *Frankfurter) Convert(ctx context.Context, amount advisor.Money, to string) (advisor.Money, error) {
	from := amount.Currency()
	to = strings.ToUpper(strings.TrimSpace(to))
	switch {
	case from == "":
		return advisor.Money{}, fmt.Errorf("%w: amount %v has no currency", advisor.ErrInvalidInput, amount)
	case !advisor.IsCurrency(from):
		return advisor.Money{}, fmt.Errorf("%w: unknown currency %q", advisor.ErrInvalidInput, from)
	case !advisor.IsCurrency(to):
		return advisor.Money{}, fmt.Errorf("%w: unknown currency %q", advisor.ErrInvalidInput, to)
	case from == to:
		return amount, nil
	}

	q := url.Values{}
	q.Set("amount", amount.Decimal().String())
	q.Set("from", from)
	q.Set("to", to)
	addr := f.baseURL + "/latest?" + q.Encode()

	var jobj any
	if err := jwget(ctx, f.client, addr, &jobj); err != nil {
		return advisor.Money{}, fmt.Errorf("%w: converting %s to %s: %w", advisor.ErrDataUnavailable, from, to, err)
	}
	path := "$.rates." + to
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return advisor.Money{}, fmt.Errorf("%w: parsing %q: %w", advisor.ErrDataUnavailable, path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return advisor.Money{}, fmt.Errorf("%w: parsing %q: not a number %v", advisor.ErrDataUnavailable, path, jval)
	}
	f.log.Debug().Str("from", from).Str("to", to).Float64("result", val).Msg("converted")
	return advisor.M(val, to), nil
}
