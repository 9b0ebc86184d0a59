package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/date"
	"github.com/etnz/advisor/market"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	output
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show an instrument's details and last price" }
func (*quoteCmd) Usage() string {
	return `adv quote <symbol>

  Shows the name, sector, currency, last price, market capitalization and
  dividend yield of an instrument. Missing figures read N/A.
`
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: quote takes exactly one symbol")
		return subcommands.ExitUsageError
	}
	q := market.Lookup(ctx, newProvider(), strings.ToUpper(f.Arg(0)), date.OneMonth)
	if q.Err != nil && q.Instrument.Name == "" && len(q.History) == 0 {
		return status("looking up "+q.Instrument.Symbol, q.Err)
	}
	c.print(renderer.RenderChart(renderer.NewChart(q, advisor.Indicators{}, 0)))
	return subcommands.ExitSuccess
}
