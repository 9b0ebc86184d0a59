package cmd

import (
	"context"
	"flag"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type allocateCmd struct {
	output
	objective string
	risk      string
	horizon   int
	esg       bool
	liquidity bool
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "suggest an asset allocation for the profile" }
func (*allocateCmd) Usage() string {
	return `adv allocate [-objective <objective>] [-risk <risk>] [-horizon <years>] [-esg] [-liquidity]

  Suggests how to split savings between domestic equity, international
  equity, fixed income, ESG funds and cash, and lists the rules applied.

  Flags override the profile for this run only.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.objective, "objective", "", "objective: retirement, home-purchase, travel, passive-income or other")
	f.StringVar(&c.risk, "risk", "", "risk tolerance: low, moderate or high")
	f.IntVar(&c.horizon, "horizon", 0, "investment horizon in years")
	f.BoolVar(&c.esg, "esg", false, "prefer ESG funds")
	f.BoolVar(&c.liquidity, "liquidity", false, "keep cash for a short-term need")
}

// apply overrides the fields of p whose flag was set on the command line.
func (c *allocateCmd) apply(f *flag.FlagSet, p advisor.Profile) (advisor.Profile, error) {
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "objective":
			p.Objective, err = advisor.ParseObjective(c.objective)
		case "risk":
			p.Risk, err = advisor.ParseRiskTolerance(c.risk)
		case "horizon":
			p.Horizon = c.horizon
		case "esg":
			p.ESG = c.esg
		case "liquidity":
			p.Liquidity = c.liquidity
		}
	})
	if err != nil {
		return p, err
	}
	return p, p.Validate()
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	if p, err = c.apply(f, p); err != nil {
		return status("parsing flags", err)
	}
	a := advisor.ComputeAllocation(p)
	c.print(renderer.RenderAllocation(renderer.NewAllocation(a)))
	return subcommands.ExitSuccess
}
