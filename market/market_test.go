package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wnjoon/go-yfinance/pkg/models"
)

func daily(start date.Date, closes ...float64) advisor.PriceSeries {
	res := make(advisor.PriceSeries, len(closes))
	for i, c := range closes {
		res[i] = advisor.Bar{Date: start.Add(i), Open: c, High: c, Low: c, Close: c}
	}
	return res
}

func testProvider() Static {
	start := date.New(2025, time.March, 1)
	return Static{
		Series: map[string]advisor.PriceSeries{
			"AAPL":  daily(start, 100, 101, 102, 104, 110),
			"EMPTY": nil,
		},
		Instruments: map[string]Instrument{
			"AAPL":  {Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Price: ptr(110)},
			"EMPTY": {Symbol: "EMPTY"},
		},
	}
}

func TestLookup(t *testing.T) {
	q := Lookup(context.Background(), testProvider(), "AAPL", date.OneMonth)

	require.NoError(t, q.Err)
	assert.True(t, q.OK())
	assert.Equal(t, "Apple Inc.", q.Instrument.Name)
	assert.Len(t, q.History, 5)
	require.NotNil(t, q.Change())
	assert.InDelta(t, 10, *q.Change(), 1e-9)
	assert.Equal(t, 110.0, *q.Price())
}

func TestLookup_NotAvailable(t *testing.T) {
	q := Lookup(context.Background(), testProvider(), "NOPE", date.OneYear)

	require.Error(t, q.Err)
	assert.ErrorIs(t, q.Err, advisor.ErrDataUnavailable)
	assert.Equal(t, "NOPE", q.Instrument.Symbol)
	assert.Nil(t, q.Price())
	assert.Nil(t, q.Change())
	assert.Equal(t, NotAvailable, Text(q.Instrument.Name))
	assert.Equal(t, NotAvailable, Number(q.Instrument.MarketCap, "%.0f"))
	assert.Equal(t, NotAvailable, Compact(q.Instrument.MarketCap))
}

func TestLookup_EmptyHistory(t *testing.T) {
	q := Lookup(context.Background(), testProvider(), "EMPTY", date.FiveDays)
	assert.ErrorIs(t, q.Err, advisor.ErrDataUnavailable)
	assert.Equal(t, "EMPTY", q.Instrument.Symbol)
	assert.Empty(t, q.History)
}

func TestWatch_ContinuesAfterFailure(t *testing.T) {
	quotes := Watch(context.Background(), testProvider(), []string{"NOPE", "AAPL"}, date.OneMonth)
	require.Len(t, quotes, 2)
	assert.False(t, quotes[0].OK())
	assert.True(t, quotes[1].OK())
}

func TestStatic_Period(t *testing.T) {
	h, err := testProvider().History(context.Background(), "AAPL", date.OneDay)
	require.NoError(t, err)
	require.Len(t, h, 1)
	assert.Equal(t, 110.0, h[0].Close)
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "3.00T", Compact(ptr(3e12)))
	assert.Equal(t, "1.50B", Compact(ptr(1.5e9)))
	assert.Equal(t, "999.00", Compact(ptr(999)))
	assert.Equal(t, "-2.00M", Compact(ptr(-2e6)))
}

// fakeYahoo serves canned responses and counts calls.
type fakeYahoo struct {
	bars  []models.Bar
	meta  *models.Info
	err   error
	calls int
}

func (f *fakeYahoo) history(symbol, period string) ([]models.Bar, error) {
	f.calls++
	return f.bars, f.err
}

func (f *fakeYahoo) info(symbol string) (*models.Info, error) {
	f.calls++
	return f.meta, f.err
}

func fastOptions() YahooOptions {
	return YahooOptions{RequestsPerSecond: 1000, BreakerFailures: 2, BreakerTimeout: time.Hour}
}

func TestYahoo_History(t *testing.T) {
	day := time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)
	api := &fakeYahoo{bars: []models.Bar{
		{Date: day, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
		{Date: day.AddDate(0, 0, 1), Open: 1.5, High: 2.5, Low: 1, Close: 2, Volume: 200},
		{Date: day.AddDate(0, 0, 1).Add(time.Hour), Open: 2, High: 2.8, Low: 0.9, Close: 2.1, Volume: 260},
	}}
	y := newYahoo(zerolog.Nop(), fastOptions(), api)

	h, err := y.History(context.Background(), "AAPL", date.FiveDays)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.NoError(t, h.Validate())
	assert.Equal(t, date.New(2025, time.March, 3), h[0].Date)
	assert.Equal(t, 1.0, h[0].Open)

	// the intraday bar is merged into the day it repeats
	assert.Equal(t, advisor.Bar{
		Date:   date.New(2025, time.March, 4),
		Open:   1.5,
		High:   2.8,
		Low:    0.9,
		Close:  2.1,
		Volume: 260,
	}, h[1])
}

func TestYahoo_Instrument(t *testing.T) {
	api := &fakeYahoo{meta: &models.Info{
		ShortName:                  "Apple",
		Sector:                     "Technology",
		Currency:                   "USD",
		RegularMarketPreviousClose: 190,
		MarketCap:                  3000000000000,
	}}
	y := newYahoo(zerolog.Nop(), fastOptions(), api)

	in, err := y.Instrument(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", in.Symbol)
	assert.Equal(t, "Apple", in.Name)
	assert.Equal(t, "Technology", in.Sector)
	assert.Equal(t, 190.0, *in.Price)
	assert.Equal(t, "3.00T", Compact(in.MarketCap))
	assert.Nil(t, in.DividendYield)
	assert.Equal(t, NotAvailable, Text(in.Description))
}

func TestYahoo_BreakerOpens(t *testing.T) {
	api := &fakeYahoo{err: errors.New("connection refused")}
	y := newYahoo(zerolog.Nop(), fastOptions(), api)
	ctx := context.Background()

	for range 2 {
		_, err := y.History(ctx, "AAPL", date.OneMonth)
		require.Error(t, err)
	}
	assert.Equal(t, 2, api.calls)

	_, err := y.Instrument(ctx, "AAPL")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, api.calls, "an open breaker does not call the endpoint")

	q := Lookup(ctx, y, "AAPL", date.OneMonth)
	assert.ErrorIs(t, q.Err, advisor.ErrDataUnavailable)
}

func TestYahoo_Canceled(t *testing.T) {
	api := &fakeYahoo{}
	y := newYahoo(zerolog.Nop(), fastOptions(), api)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := y.History(ctx, "AAPL", date.OneMonth)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, api.calls)
}
