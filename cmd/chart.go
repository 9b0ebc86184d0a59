package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/market"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output
	period string
	sma    int
	rsi    int
	macd   string
	rows   int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "show prices and technical indicators" }
func (*chartCmd) Usage() string {
	return `adv chart [-period <period>] [-sma <n>] [-rsi <n>] [-macd <fast,slow,signal>] [-rows <n>] <symbol>

  Shows the last daily closes of an instrument with its simple moving
  average, relative strength index and MACD. A zero window, or an empty
  -macd, disables the indicator.

  See "adv topic indicators".
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.period, "period", date.SixMonths.String(), "history period: 1mo, 3mo, 6mo, 1y, 5y")
	f.IntVar(&c.sma, "sma", advisor.DefaultSMAWindow, "SMA window in days")
	f.IntVar(&c.rsi, "rsi", advisor.DefaultRSIWindow, "RSI window in days")
	f.StringVar(&c.macd, "macd", fmt.Sprintf("%d,%d,%d", advisor.DefaultMACDFast, advisor.DefaultMACDSlow, advisor.DefaultMACDSignal), "MACD fast, slow and signal spans")
	f.IntVar(&c.rows, "rows", 10, "number of days listed, negative for all")
}

// options returns the indicator options of the flags.
func (c *chartCmd) options() (advisor.IndicatorOptions, error) {
	o := advisor.IndicatorOptions{SMA: c.sma, RSI: c.rsi}
	if c.macd == "" {
		return o, nil
	}
	spans := strings.Split(c.macd, ",")
	if len(spans) != 3 {
		return o, fmt.Errorf("%w: -macd %q must be <fast>,<slow>,<signal>", advisor.ErrInvalidInput, c.macd)
	}
	var n [3]int
	for i, s := range spans {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return o, fmt.Errorf("%w: -macd %q: %v", advisor.ErrInvalidInput, c.macd, err)
		}
		n[i] = v
	}
	o.MACDFast, o.MACDSlow, o.MACDSignal = n[0], n[1], n[2]
	return o, nil
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: chart takes exactly one symbol")
		return subcommands.ExitUsageError
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return status("parsing period", invalid(err))
	}
	opts, err := c.options()
	if err != nil {
		return status("parsing indicators", err)
	}
	q := market.Lookup(ctx, newProvider(), strings.ToUpper(f.Arg(0)), period)
	if len(q.History) == 0 {
		return status("looking up "+q.Instrument.Symbol, q.Err)
	}
	in, err := advisor.ComputeIndicators(q.History, opts)
	if err != nil {
		return status("computing indicators", err)
	}
	c.print(renderer.RenderChart(renderer.NewChart(q, in, c.rows)))
	return subcommands.ExitSuccess
}
