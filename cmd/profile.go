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

type profileCmd struct {
	output
	init bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display the investor profile" }
func (*profileCmd) Usage() string {
	return `adv profile [-init]

  Displays the profile used by every other command. The profile is read from
  the file given by -profile or the configuration, or is the default one.

  With -init, prints the profile as YAML, ready to be saved and edited.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.BoolVar(&c.init, "init", false, "print the profile as an editable YAML file")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	if c.init {
		if err := advisor.EncodeProfile(stdout, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	c.print(renderer.RenderProfile(renderer.NewProfile(p)))
	return subcommands.ExitSuccess
}
