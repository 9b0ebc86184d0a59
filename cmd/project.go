package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	output
	rate    float64
	years   int
	initial string
	monthly string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the savings at a constant rate" }
func (*projectCmd) Usage() string {
	return `adv project [-rate <percent>] [-years <n>] [-initial <amount>] [-monthly <amount>]

  Projects the capital year by year: the initial amount plus the monthly
  contributions, compounded at a constant annual rate.

  Amounts and horizon default to the profile.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.Float64Var(&c.rate, "rate", 5, "annual return in percent")
	f.IntVar(&c.years, "years", 0, "number of years, defaults to the profile horizon")
	f.StringVar(&c.initial, "initial", "", "initial amount, defaults to the profile")
	f.StringVar(&c.monthly, "monthly", "", "monthly contribution, defaults to the profile")
}

// amounts returns the initial and monthly amounts of the flags, or of p.
func amounts(p advisor.Profile, initial, monthly string) (advisor.Money, advisor.Money, error) {
	i, m := p.Initial, p.Monthly
	var err error
	if initial != "" {
		if i, err = advisor.ParseMoney(initial); err != nil {
			return i, m, invalid(err)
		}
		i = i.WithCurrency(p.Initial.Currency())
	}
	if monthly != "" {
		if m, err = advisor.ParseMoney(monthly); err != nil {
			return i, m, invalid(err)
		}
		m = m.WithCurrency(i.Currency())
	}
	if !i.Compatible(m) {
		return i, m, fmt.Errorf("%w: initial amount in %s but monthly contribution in %s", advisor.ErrInvalidInput, i.Currency(), m.Currency())
	}
	return i, m, nil
}

// horizon returns the years flag, or the profile horizon when it is 0. Like
// the profile horizon it must be between 1 and advisor.MaxHorizon.
func horizon(p advisor.Profile, years int) (int, error) {
	switch {
	case years == 0:
		return p.Horizon, nil
	case years < 1 || years > advisor.MaxHorizon:
		return 0, fmt.Errorf("%w: years %d must be between 1 and %d", advisor.ErrInvalidInput, years, advisor.MaxHorizon)
	}
	return years, nil
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	initial, monthly, err := amounts(p, c.initial, c.monthly)
	if err != nil {
		return status("parsing amounts", err)
	}
	years, err := horizon(p, c.years)
	if err != nil {
		return status("reading years", err)
	}
	values, err := advisor.Project(initial.Float(), monthly.Float(), c.rate, years)
	if err != nil {
		return status("projecting", err)
	}
	c.print(renderer.RenderProjection(renderer.NewProjection(initial, monthly, c.rate, values)))
	return subcommands.ExitSuccess
}
