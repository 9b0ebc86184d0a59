package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type simulateCmd struct {
	output
	paths      int
	mean       float64
	volatility float64
	years      int
	initial    string
	target     float64
	seed       uint64
	export     string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a Monte Carlo simulation of the savings" }
func (*simulateCmd) Usage() string {
	return `adv simulate [-paths <n>] [-mean <percent>] [-volatility <percent>] [-years <n>] [-initial <amount>] [-target <amount>] [-seed <n>]

  Draws many trajectories of the initial capital, each year growing by a
  random return of the given mean and volatility, and summarizes the final
  capital: mean, extremes, and the 10th, 50th and 90th percentiles.

  With -target, also reports the share of trajectories reaching it.
  A non zero -seed (or simulation.seed in the configuration) reproduces a run.

  With -export, the first trajectories (simulation.display_paths in the
  configuration) are written to a CSV file, one row per trajectory, for
  charting.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.IntVar(&c.paths, "paths", 500, "number of simulated trajectories")
	f.Float64Var(&c.mean, "mean", 7, "mean annual return in percent")
	f.Float64Var(&c.volatility, "volatility", 20, "standard deviation of the annual return in percent")
	f.IntVar(&c.years, "years", 0, "number of years, defaults to the profile horizon")
	f.StringVar(&c.initial, "initial", "", "initial amount, defaults to the profile")
	f.Float64Var(&c.target, "target", 0, "final capital to reach")
	f.Uint64Var(&c.seed, "seed", 0, "random seed, 0 uses the configuration or a fresh one")
	f.StringVar(&c.export, "export", "", "write the displayed trajectories to a CSV file")
}

// exportPaths writes paths as CSV: the path number, then the capital of every year.
func exportPaths(file string, paths [][]float64) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	if len(paths) > 0 {
		header := []string{"path"}
		for y := range paths[0] {
			header = append(header, "year"+strconv.Itoa(y))
		}
		w.Write(header)
	}
	for i, path := range paths {
		rec := []string{strconv.Itoa(i + 1)}
		for _, v := range path {
			rec = append(rec, strconv.FormatFloat(v, 'f', 2, 64))
		}
		w.Write(rec)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// randomSource returns the source of a simulation: seed, else the configured
// seed, else a fresh one.
func randomSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = Config.Simulation.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug().Uint64("seed", seed).Msg("simulation seed")
	return rand.NewPCG(seed, seed)
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadProfile()
	if err != nil {
		return status("loading profile", err)
	}
	initial, _, err := amounts(p, c.initial, "")
	if err != nil {
		return status("parsing amounts", err)
	}
	years, err := horizon(p, c.years)
	if err != nil {
		return status("reading years", err)
	}
	s, err := advisor.Simulate(randomSource(c.seed), advisor.SimulationParams{
		Initial:       initial.Float(),
		Years:         years,
		Paths:         c.paths,
		MeanPct:       c.mean,
		VolatilityPct: c.volatility,
		Limits:        Config.PathLimits(),
	})
	if err != nil {
		return status("simulating", err)
	}
	if c.export != "" {
		if err := exportPaths(c.export, s.Display(Config.Simulation.DisplayPaths)); err != nil {
			return status("exporting paths", err)
		}
		log.Info().Str("file", c.export).Msg("trajectories written")
	}
	c.print(renderer.RenderSimulation(renderer.NewSimulation(s, initial.Currency(), c.target)))
	return subcommands.ExitSuccess
}
