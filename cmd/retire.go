package cmd

import (
	"context"
	"flag"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type retireCmd struct {
	output
	rate      float64
	inflation float64
}

func (*retireCmd) Name() string     { return "retire" }
func (*retireCmd) Synopsis() string { return "check the savings against the retirement need" }
func (*retireCmd) Usage() string {
	return `adv retire [-rate <percent>] [-inflation <percent>]

  Computes the capital needed to draw the desired income every year of the
  retirement, the income growing with inflation, and compares it with the
  savings projected until the retirement age.
`
}

func (c *retireCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.Float64Var(&c.rate, "rate", 5, "annual return until retirement in percent")
	f.Float64Var(&c.inflation, "inflation", advisor.DefaultInflation, "yearly inflation in percent")
}

func (c *retireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	check, err := advisor.CheckRetirement(p, c.rate, c.inflation)
	if err != nil {
		return status("checking retirement", err)
	}
	c.print(renderer.RenderRetirement(renderer.NewRetirement(p, check, c.rate, c.inflation)))
	return subcommands.ExitSuccess
}
