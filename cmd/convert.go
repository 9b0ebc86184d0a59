package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

type convertCmd struct {
	to string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount to another currency" }
func (*convertCmd) Usage() string {
	return `adv convert -to <currency> <amount> <currency>

  Converts an amount at the latest reference rate.

  Example:

    adv convert -to USD 100 EUR
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "target currency, defaults to the configured currency")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	to := c.to
	if to == "" {
		to = Config.Currency
	}
	if f.NArg() == 0 || to == "" {
		fmt.Fprintln(os.Stderr, "Error: convert needs an amount and a target currency")
		return subcommands.ExitUsageError
	}
	amount, err := advisor.ParseMoney(strings.Join(f.Args(), " "))
	if err != nil {
		return status("parsing amount", invalid(err))
	}
	amount = amount.WithCurrency(Config.Currency)
	res, err := newConverter().Convert(ctx, amount, to)
	if err != nil {
		return status("converting", err)
	}
	fmt.Fprintf(stdout, "%s = %s\n", amount, res)
	return subcommands.ExitSuccess
}
