package advisor

import (
	"fmt"

	"github.com/etnz/advisor/date"
	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/stat"
)

// Bar is one OHLCV record of a price history.
type Bar struct {
	Date   date.Date
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is a chronological price history, oldest first, one bar per day.
type PriceSeries []Bar

// Validate checks that dates are strictly increasing.
func (s PriceSeries) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Date.After(s[i-1].Date) {
			return invalidf("price series is not chronological at %s (after %s)", s[i].Date, s[i-1].Date)
		}
	}
	return nil
}

// Closes returns the closing prices.
func (s PriceSeries) Closes() []float64 {
	res := make([]float64, len(s))
	for i, b := range s {
		res[i] = b.Close
	}
	return res
}

// Last returns the most recent bar, or false if the series is empty.
func (s PriceSeries) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

// Point is one value of an indicator. Valid is false while the indicator's
// window is not filled yet; Value is then meaningless.
type Point struct {
	Value float64
	Valid bool
}

// Default indicator windows.
const (
	DefaultSMAWindow  = 20
	DefaultRSIWindow  = 14
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
	RSIOverbought     = 70
	RSIOversold       = 30
)

// IndicatorOptions selects the indicators to compute. A zero window disables
// the indicator.
type IndicatorOptions struct {
	SMA        int
	RSI        int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
}

// DefaultIndicatorOptions selects every indicator with its usual window.
func DefaultIndicatorOptions() IndicatorOptions {
	return IndicatorOptions{
		SMA:        DefaultSMAWindow,
		RSI:        DefaultRSIWindow,
		MACDFast:   DefaultMACDFast,
		MACDSlow:   DefaultMACDSlow,
		MACDSignal: DefaultMACDSignal,
	}
}

func (o IndicatorOptions) macd() bool { return o.MACDFast > 0 || o.MACDSlow > 0 || o.MACDSignal > 0 }

func (o IndicatorOptions) validate() error {
	switch {
	case o.SMA < 0:
		return invalidf("SMA window %d must not be negative", o.SMA)
	case o.RSI < 0:
		return invalidf("RSI window %d must not be negative", o.RSI)
	case o.macd() && (o.MACDFast < 1 || o.MACDSlow < 1 || o.MACDSignal < 1):
		return invalidf("MACD spans %d/%d/%d must all be positive", o.MACDFast, o.MACDSlow, o.MACDSignal)
	}
	return nil
}

// Indicators holds the derived series, aligned index for index with the
// price series they were computed from. Unselected indicators are nil.
type Indicators struct {
	SMA       []Point
	RSI       []Point
	MACD      []Point
	Signal    []Point
	Histogram []Point
}

// ComputeIndicators derives the selected indicators from the closing prices
// of s. The series is not modified.
func ComputeIndicators(s PriceSeries, o IndicatorOptions) (Indicators, error) {
	if err := s.Validate(); err != nil {
		return Indicators{}, err
	}
	if err := o.validate(); err != nil {
		return Indicators{}, err
	}
	closes := s.Closes()
	var res Indicators
	if o.SMA > 0 {
		res.SMA = SMA(closes, o.SMA)
	}
	if o.RSI > 0 {
		res.RSI = RSI(closes, o.RSI)
	}
	if o.macd() {
		res.MACD, res.Signal, res.Histogram = MACD(closes, o.MACDFast, o.MACDSlow, o.MACDSignal)
	}
	return res, nil
}

// SMA returns the simple moving average over the trailing window values.
// The first window-1 points are not valid.
func SMA(values []float64, window int) []Point {
	res := make([]Point, len(values))
	if window < 1 || len(values) < window {
		return res
	}
	for i, v := range talib.Sma(values, window) {
		if i >= window-1 {
			res[i] = Point{Value: v, Valid: true}
		}
	}
	return res
}

// RSI returns the relative strength index using the plain mean of gains and
// losses over the last window price changes. The first window points are not
// valid. When there is no loss in the window the RSI is exactly 100.
func RSI(values []float64, window int) []Point {
	res := make([]Point, len(values))
	if window < 1 || len(values) <= window {
		return res
	}
	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		if d := values[i] - values[i-1]; d > 0 {
			gains[i] = d
		} else if d < 0 {
			losses[i] = -d
		}
	}
	for i := window; i < len(values); i++ {
		avgGain := stat.Mean(gains[i-window+1:i+1], nil)
		avgLoss := stat.Mean(losses[i-window+1:i+1], nil)
		if avgLoss == 0 {
			res[i] = Point{Value: 100, Valid: true}
			continue
		}
		rs := avgGain / avgLoss
		res[i] = Point{Value: 100 - 100/(1+rs), Valid: true}
	}
	return res
}

// EMA returns the exponential moving average with smoothing 2/(span+1),
// seeded with the first value.
func EMA(values []float64, span int) []float64 {
	res := make([]float64, len(values))
	if len(values) == 0 {
		return res
	}
	alpha := 2 / (float64(span) + 1)
	res[0] = values[0]
	for i := 1; i < len(values); i++ {
		res[i] = alpha*values[i] + (1-alpha)*res[i-1]
	}
	return res
}

// MACD returns the MACD line (fast EMA minus slow EMA), its signal line and
// the histogram (MACD minus signal). All points are valid.
func MACD(values []float64, fast, slow, signal int) (macd, sig, hist []Point) {
	f, s := EMA(values, fast), EMA(values, slow)
	line := make([]float64, len(values))
	for i := range line {
		line[i] = f[i] - s[i]
	}
	sl := EMA(line, signal)
	macd = make([]Point, len(values))
	sig = make([]Point, len(values))
	hist = make([]Point, len(values))
	for i := range line {
		macd[i] = Point{Value: line[i], Valid: true}
		sig[i] = Point{Value: sl[i], Valid: true}
		hist[i] = Point{Value: line[i] - sl[i], Valid: true}
	}
	return macd, sig, hist
}

// last returns the last valid point of a series.
func last(points []Point) (Point, bool) {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Valid {
			return points[i], true
		}
	}
	return Point{}, false
}

// Reading is the latest interpretation of the indicators.
type Reading struct {
	SMA, RSI, MACD, Signal Point
	Signals                []string
}

// Latest reads the last valid value of each indicator and interprets it.
func (in Indicators) Latest() Reading {
	var r Reading
	r.SMA, _ = last(in.SMA)
	if p, ok := last(in.RSI); ok {
		r.RSI = p
		switch {
		case p.Value > RSIOverbought:
			r.Signals = append(r.Signals, fmt.Sprintf("RSI at %.1f: overbought, the recent rise may run out of steam.", p.Value))
		case p.Value < RSIOversold:
			r.Signals = append(r.Signals, fmt.Sprintf("RSI at %.1f: oversold, the recent fall may be overdone.", p.Value))
		default:
			r.Signals = append(r.Signals, fmt.Sprintf("RSI at %.1f: neutral momentum.", p.Value))
		}
	}
	m, okm := last(in.MACD)
	s, oks := last(in.Signal)
	if okm && oks {
		r.MACD, r.Signal = m, s
		if m.Value > s.Value {
			r.Signals = append(r.Signals, "MACD above its signal line: bullish momentum.")
		} else {
			r.Signals = append(r.Signals, "MACD below its signal line: bearish momentum.")
		}
	}
	return r
}
