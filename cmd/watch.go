package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/market"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type watchCmd struct {
	output
	period string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "show the quotes of a watchlist" }
func (*watchCmd) Usage() string {
	return `adv watch [-period <period>] [<symbols>...]

  Shows the last price and the change over the period of every symbol.
  Symbols are separated by spaces, commas or semicolons. A symbol that cannot
  be found is reported and does not stop the others.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.period, "period", date.FiveDays.String(), "period of the change: 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return status("parsing period", invalid(err))
	}
	text := advisor.DefaultWatchlist
	if f.NArg() > 0 {
		text = strings.Join(f.Args(), " ")
	}
	symbols := advisor.ParseWatchlist(text)
	quotes := market.Watch(ctx, newProvider(), symbols, period)
	w := renderer.NewWatchlist(quotes)
	c.print(renderer.RenderWatchlist(w))
	if w.Failed == len(quotes) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
