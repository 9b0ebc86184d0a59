// Package market looks up instrument metadata and price history.
//
// Lookups never fail the caller: Lookup and Watch record the failure in the
// returned Quote and the rendering carries on with NotAvailable markers.
package market

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
)

// NotAvailable is displayed in place of a missing value.
const NotAvailable = "N/A"

// Provider is a source of market data.
type Provider interface {
	// History returns the daily bars of symbol over period, ending today.
	History(ctx context.Context, symbol string, period date.Period) (advisor.PriceSeries, error)
	// Instrument returns the description of symbol.
	Instrument(ctx context.Context, symbol string) (Instrument, error)
}

// Instrument describes a traded symbol. Nil or empty fields are unknown.
type Instrument struct {
	Symbol        string
	Name          string
	Sector        string
	Currency      string
	Description   string
	Price         *float64
	MarketCap     *float64
	DividendYield *float64 // as a fraction, 0.015 is 1.5%
}

// Text returns s, or NotAvailable when s is empty.
func Text(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// Number formats *v with format, or returns NotAvailable when v is nil.
func Number(v *float64, format string) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf(format, *v)
}

// Compact formats large amounts with a K, M, B or T suffix.
func Compact(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	x := *v
	for _, u := range []struct {
		div    float64
		suffix string
	}{{1e12, "T"}, {1e9, "B"}, {1e6, "M"}, {1e3, "K"}} {
		if x >= u.div || x <= -u.div {
			return fmt.Sprintf("%.2f%s", x/u.div, u.suffix)
		}
	}
	return fmt.Sprintf("%.2f", x)
}

// Quote is the outcome of a lookup. Err is set when part of the data could
// not be retrieved; it wraps advisor.ErrDataUnavailable.
type Quote struct {
	Symbol     string
	Period     date.Period
	Instrument Instrument
	History    advisor.PriceSeries
	Err        error
}

// OK reports whether the lookup fully succeeded.
func (q Quote) OK() bool { return q.Err == nil }

// Change returns the relative change of the close over the history, in
// percent, or nil with fewer than two bars.
func (q Quote) Change() *float64 {
	if len(q.History) < 2 || q.History[0].Close == 0 {
		return nil
	}
	first, last := q.History[0].Close, q.History[len(q.History)-1].Close
	v := (last/first - 1) * 100
	return &v
}

// Price returns the instrument price, falling back on the last close.
func (q Quote) Price() *float64 {
	if q.Instrument.Price != nil {
		return q.Instrument.Price
	}
	if b, ok := q.History.Last(); ok {
		v := b.Close
		return &v
	}
	return nil
}

// unavailable wraps err so that it matches advisor.ErrDataUnavailable.
func unavailable(symbol string, err error) error {
	if errors.Is(err, advisor.ErrDataUnavailable) {
		return fmt.Errorf("%s: %w", symbol, err)
	}
	return fmt.Errorf("%w: %s: %w", advisor.ErrDataUnavailable, symbol, err)
}

// Lookup fetches the instrument and its history. It never returns an error:
// failures are recorded in Quote.Err.
func Lookup(ctx context.Context, p Provider, symbol string, period date.Period) Quote {
	q := Quote{Symbol: symbol, Period: period, Instrument: Instrument{Symbol: symbol}}
	var errs []error

	in, err := p.Instrument(ctx, symbol)
	if err != nil {
		errs = append(errs, unavailable(symbol, err))
	} else {
		q.Instrument = in
		if q.Instrument.Symbol == "" {
			q.Instrument.Symbol = symbol
		}
	}

	h, err := p.History(ctx, symbol, period)
	switch {
	case err != nil:
		errs = append(errs, unavailable(symbol, err))
	case len(h) == 0:
		errs = append(errs, unavailable(symbol, fmt.Errorf("no price history over %s", period)))
	default:
		q.History = h
	}
	q.Err = errors.Join(errs...)
	return q
}

// Watch looks up every symbol in turn.
func Watch(ctx context.Context, p Provider, symbols []string, period date.Period) []Quote {
	res := make([]Quote, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, Lookup(ctx, p, s, period))
	}
	return res
}

// Static is an in-memory Provider. Unknown symbols are not available.
type Static struct {
	Series      map[string]advisor.PriceSeries
	Instruments map[string]Instrument
}

func (s Static) History(ctx context.Context, symbol string, period date.Period) (advisor.PriceSeries, error) {
	series, ok := s.Series[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q: %w", symbol, advisor.ErrDataUnavailable)
	}
	last, ok := series.Last()
	if !ok {
		return nil, nil
	}
	r := period.Range(last.Date)
	var res advisor.PriceSeries
	for _, b := range series {
		if r.Contains(b.Date) {
			res = append(res, b)
		}
	}
	return res, nil
}

func (s Static) Instrument(ctx context.Context, symbol string) (Instrument, error) {
	in, ok := s.Instruments[symbol]
	if !ok {
		return Instrument{}, fmt.Errorf("unknown symbol %q: %w", symbol, advisor.ErrDataUnavailable)
	}
	return in, nil
}
