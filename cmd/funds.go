package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type fundsCmd struct {
	output
	file string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list and compare all-in-one ETFs" }
func (*fundsCmd) Usage() string {
	return `adv funds [-csv <file>] [<symbol> <symbol>]

  Lists the reference all-in-one ETFs with their historical return, risk,
  fees and volatility. With two symbols, also shows their differences.

  -csv reads the funds from a file with the header
  symbol,name,return,risk,fee,stddev,description
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.file, "csv", "", "read the funds from a CSV file")
}

func (c *fundsCmd) loadFunds() ([]advisor.Fund, error) {
	if c.file == "" {
		return advisor.DefaultFunds(), nil
	}
	r, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return advisor.ReadFunds(r)
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 && f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: compare exactly two funds")
		return subcommands.ExitUsageError
	}
	funds, err := c.loadFunds()
	if err != nil {
		return status("reading funds", err)
	}
	var cmp *advisor.FundComparison
	if f.NArg() == 2 {
		a, okA := advisor.FindFund(funds, f.Arg(0))
		b, okB := advisor.FindFund(funds, f.Arg(1))
		switch {
		case !okA:
			return status("comparing funds", fmt.Errorf("%w: unknown fund %q", advisor.ErrInvalidInput, f.Arg(0)))
		case !okB:
			return status("comparing funds", fmt.Errorf("%w: unknown fund %q", advisor.ErrInvalidInput, f.Arg(1)))
		}
		comparison := advisor.CompareFunds(a, b)
		cmp = &comparison
	}
	c.print(renderer.RenderFunds(renderer.NewFunds(funds, cmp)))
	return subcommands.ExitSuccess
}
