package renderer

import (
	"errors"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/market"
)

// Quote is the renderable form of a market.Quote. Missing values read N/A.
type Quote struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Sector        string `json:"sector"`
	Currency      string `json:"currency"`
	Price         string `json:"price"`
	Change        string `json:"change"`
	MarketCap     string `json:"marketCap"`
	DividendYield string `json:"dividendYield"`
	Description   string `json:"description"`
	Error         string `json:"error,omitempty"`
}

// NewQuote converts q for rendering.
func NewQuote(q market.Quote) Quote {
	res := Quote{
		Symbol:        q.Symbol,
		Name:          market.Text(q.Instrument.Name),
		Sector:        market.Text(q.Instrument.Sector),
		Currency:      market.Text(q.Instrument.Currency),
		Price:         market.Number(q.Price(), "%.2f"),
		Change:        market.NotAvailable,
		MarketCap:     market.Compact(q.Instrument.MarketCap),
		DividendYield: market.NotAvailable,
		Description:   market.Text(q.Instrument.Description),
	}
	if c := q.Change(); c != nil {
		res.Change = advisor.Percent(*c).SignedString()
	}
	if y := q.Instrument.DividendYield; y != nil {
		res.DividendYield = advisor.Percent(*y * 100).String()
	}
	if q.Err != nil {
		res.Error = firstLine(q.Err)
	}
	return res
}

// firstLine returns the message of the first joined error.
func firstLine(err error) string {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := j.Unwrap(); len(errs) > 0 {
			err = errs[0]
		}
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

// Watchlist is the renderable form of several quotes.
type Watchlist struct {
	Period string  `json:"period"`
	Quotes []Quote `json:"quotes"`
	Failed int     `json:"failed"`
}

// NewWatchlist converts quotes for rendering.
func NewWatchlist(quotes []market.Quote) *Watchlist {
	res := &Watchlist{}
	for _, q := range quotes {
		res.Period = q.Period.String()
		res.Quotes = append(res.Quotes, NewQuote(q))
		if errors.Is(q.Err, advisor.ErrDataUnavailable) {
			res.Failed++
		}
	}
	return res
}

// Chart is the renderable form of a price series and its indicators.
type Chart struct {
	Quote   Quote      `json:"quote"`
	Period  string     `json:"period"`
	Rows    []ChartRow `json:"rows"`
	Latest  ChartRow   `json:"latest"`
	Signals []string   `json:"signals"`
}

// ChartRow is one day of the chart. Values not yet defined read N/A.
type ChartRow struct {
	Date      string `json:"date"`
	Close     string `json:"close"`
	SMA       string `json:"sma"`
	RSI       string `json:"rsi"`
	MACD      string `json:"macd"`
	Signal    string `json:"signal"`
	Histogram string `json:"histogram"`
}

func point(points []advisor.Point, i int) string {
	if i >= len(points) || !points[i].Valid {
		return market.NotAvailable
	}
	return market.Number(&points[i].Value, "%.2f")
}

func reading(p advisor.Point) string {
	if !p.Valid {
		return market.NotAvailable
	}
	return market.Number(&p.Value, "%.2f")
}

// NewChart converts the quote history and its indicators for rendering.
// Only the last rows days are listed; a negative rows lists them all.
func NewChart(q market.Quote, in advisor.Indicators, rows int) *Chart {
	res := &Chart{Quote: NewQuote(q), Period: q.Period.String()}
	start := 0
	if rows >= 0 && len(q.History) > rows {
		start = len(q.History) - rows
	}
	for i := start; i < len(q.History); i++ {
		b := q.History[i]
		res.Rows = append(res.Rows, ChartRow{
			Date:      b.Date.String(),
			Close:     market.Number(&b.Close, "%.2f"),
			SMA:       point(in.SMA, i),
			RSI:       point(in.RSI, i),
			MACD:      point(in.MACD, i),
			Signal:    point(in.Signal, i),
			Histogram: point(in.Histogram, i),
		})
	}
	r := in.Latest()
	res.Latest = ChartRow{
		SMA:    reading(r.SMA),
		RSI:    reading(r.RSI),
		MACD:   reading(r.MACD),
		Signal: reading(r.Signal),
	}
	if n := len(res.Rows); n > 0 {
		res.Latest.Date, res.Latest.Close = res.Rows[n-1].Date, res.Rows[n-1].Close
	}
	res.Signals = r.Signals
	return res
}
