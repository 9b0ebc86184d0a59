package market

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"
	"golang.org/x/time/rate"
)

// YahooOptions tunes the Yahoo Finance provider.
type YahooOptions struct {
	RequestsPerSecond float64       // spacing between two requests
	BreakerFailures   uint32        // consecutive failures that open the breaker
	BreakerTimeout    time.Duration // time the breaker stays open
}

// DefaultYahooOptions are used for zero fields of YahooOptions.
var DefaultYahooOptions = YahooOptions{
	RequestsPerSecond: 2,
	BreakerFailures:   3,
	BreakerTimeout:    30 * time.Second,
}

// backend is the part of Yahoo Finance the provider uses.
type backend interface {
	history(symbol, period string) ([]models.Bar, error)
	info(symbol string) (*models.Info, error)
}

// yfinance calls Yahoo Finance through go-yfinance.
type yfinance struct{}

func (yfinance) history(symbol, period string) ([]models.Bar, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker: %w", err)
	}
	defer t.Close()

	return t.History(models.HistoryParams{
		Period:     period,
		Interval:   "1d",
		AutoAdjust: true,
	})
}

func (yfinance) info(symbol string) (*models.Info, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker: %w", err)
	}
	defer t.Close()
	return t.Info()
}

// Yahoo is a Provider backed by Yahoo Finance.
//
// Requests are spaced by a rate limiter and go through a circuit breaker: once
// the endpoint fails repeatedly, lookups fail immediately until the breaker
// timeout elapses. Failed requests are not retried.
type Yahoo struct {
	log     zerolog.Logger
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	api     backend
}

// NewYahoo creates a Yahoo Finance provider.
func NewYahoo(log zerolog.Logger, opts YahooOptions) *Yahoo {
	return newYahoo(log, opts, yfinance{})
}

func newYahoo(log zerolog.Logger, opts YahooOptions, api backend) *Yahoo {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultYahooOptions.RequestsPerSecond
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = DefaultYahooOptions.BreakerFailures
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = DefaultYahooOptions.BreakerTimeout
	}
	log = log.With().Str("client", "yahoo").Logger()

	st := gobreaker.Settings{
		Name:    "yahoo",
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}
	return &Yahoo{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		breaker: gobreaker.NewCircuitBreaker(st),
		api:     api,
	}
}

// do runs fn once the limiter allows it, through the circuit breaker.
func (y *Yahoo) do(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if err := y.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return y.breaker.Execute(fn)
}

// History implements Provider.
func (y *Yahoo) History(ctx context.Context, symbol string, period date.Period) (advisor.PriceSeries, error) {
	res, err := y.do(ctx, func() (interface{}, error) {
		return y.api.history(symbol, period.String())
	})
	if err != nil {
		y.log.Debug().Err(err).Str("symbol", symbol).Stringer("period", period).Msg("history failed")
		return nil, fmt.Errorf("failed to get historical prices: %w", err)
	}
	bars := res.([]models.Bar)

	series := make(advisor.PriceSeries, 0, len(bars))
	for _, bar := range bars {
		d := date.FromTime(bar.Date)
		// Yahoo may repeat the current day with an intraday bar.
		if n := len(series); n > 0 && !d.After(series[n-1].Date) {
			last := &series[n-1]
			last.High = math.Max(last.High, bar.High)
			last.Low = math.Min(last.Low, bar.Low)
			last.Close = bar.Close
			last.Volume = float64(bar.Volume)
			continue
		}
		series = append(series, advisor.Bar{
			Date:   d,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: float64(bar.Volume),
		})
	}
	y.log.Debug().Str("symbol", symbol).Stringer("period", period).Int("bars", len(series)).Msg("history")
	return series, nil
}

// Instrument implements Provider.
func (y *Yahoo) Instrument(ctx context.Context, symbol string) (Instrument, error) {
	res, err := y.do(ctx, func() (interface{}, error) {
		return y.api.info(symbol)
	})
	if err != nil {
		y.log.Debug().Err(err).Str("symbol", symbol).Msg("info failed")
		return Instrument{}, fmt.Errorf("failed to get info: %w", err)
	}
	info := res.(*models.Info)
	if info == nil {
		return Instrument{}, fmt.Errorf("no info for %q: %w", symbol, advisor.ErrDataUnavailable)
	}

	in := Instrument{
		Symbol:      symbol,
		Name:        info.LongName,
		Sector:      info.Sector,
		Currency:    info.Currency,
		Description: info.LongBusinessSummary,
	}
	if in.Name == "" {
		in.Name = info.ShortName
	}
	switch {
	case info.CurrentPrice > 0:
		in.Price = ptr(info.CurrentPrice)
	case info.RegularMarketPreviousClose > 0:
		in.Price = ptr(info.RegularMarketPreviousClose)
	}
	if info.MarketCap > 0 {
		in.MarketCap = ptr(float64(info.MarketCap))
	}
	if info.DividendYield > 0 {
		in.DividendYield = ptr(info.DividendYield)
	}
	return in, nil
}

func ptr(v float64) *float64 { return &v }
