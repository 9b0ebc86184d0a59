package advisor

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PathLimits bounds the number of paths a simulation may draw.
type PathLimits struct {
	Min, Max int
}

// DefaultPathLimits are used when SimulationParams.Limits is zero.
var DefaultPathLimits = PathLimits{Min: 100, Max: 10000}

// DefaultDisplayPaths is the number of paths worth drawing on a chart.
const DefaultDisplayPaths = 50

// SimulationParams describes a Monte Carlo run.
type SimulationParams struct {
	Initial       float64
	Years         int
	Paths         int
	MeanPct       float64 // mean annual return, in percent
	VolatilityPct float64 // standard deviation of the annual return, in percent
	Limits        PathLimits
}

func (p SimulationParams) validate() error {
	lim := p.Limits
	if lim == (PathLimits{}) {
		lim = DefaultPathLimits
	}
	switch {
	case !finite(p.Initial, p.MeanPct, p.VolatilityPct):
		return invalidf("initial %g, mean %g%% and volatility %g%% must be finite", p.Initial, p.MeanPct, p.VolatilityPct)
	case p.Years < 1:
		return invalidf("years %d must be at least 1", p.Years)
	case p.Paths < lim.Min || p.Paths > lim.Max:
		return invalidf("paths %d must be between %d and %d", p.Paths, lim.Min, lim.Max)
	case p.Initial < 0:
		return invalidf("initial amount %g must not be negative", p.Initial)
	case p.VolatilityPct < 0:
		return invalidf("volatility %g%% must not be negative", p.VolatilityPct)
	}
	return nil
}

// Simulation holds every path of a Monte Carlo run.
type Simulation struct {
	Params SimulationParams
	Paths  [][]float64 // Paths[i][0] is the initial capital, Paths[i][Years] the final one.
}

// Simulate draws p.Paths independent capital trajectories. Every year the
// capital is multiplied by 1+r where r is drawn from a normal distribution of
// mean MeanPct/100 and standard deviation VolatilityPct/100.
//
// Draws come from src only, so a seeded source reproduces a run.
func Simulate(src rand.Source, p SimulationParams) (*Simulation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	normal := distuv.Normal{
		Mu:    p.MeanPct / 100,
		Sigma: p.VolatilityPct / 100,
		Src:   src,
	}
	paths := make([][]float64, p.Paths)
	for i := range paths {
		path := make([]float64, p.Years+1)
		path[0] = p.Initial
		capital := p.Initial
		for y := 1; y <= p.Years; y++ {
			capital *= 1 + normal.Rand()
			path[y] = capital
		}
		if !finite(capital) {
			return nil, invalidf("path %d overflows after %d years", i, p.Years)
		}
		paths[i] = path
	}
	return &Simulation{Params: p, Paths: paths}, nil
}

// Display returns at most n paths for drawing. Statistics always use every path.
func (s *Simulation) Display(n int) [][]float64 {
	if n < 0 {
		n = 0
	}
	return s.Paths[:min(n, len(s.Paths))]
}

// Finals returns the final capital of every path.
func (s *Simulation) Finals() []float64 {
	res := make([]float64, len(s.Paths))
	for i, path := range s.Paths {
		res[i] = path[len(path)-1]
	}
	return res
}

// SimulationSummary describes the distribution of the final capital.
type SimulationSummary struct {
	Mean, Min, Max float64
	P10, P50, P90  float64
}

// Summary computes the distribution of the final capital over all paths.
func (s *Simulation) Summary() SimulationSummary {
	finals := s.Finals()
	if len(finals) == 0 {
		return SimulationSummary{}
	}
	sort.Float64s(finals)
	return SimulationSummary{
		Mean: stat.Mean(finals, nil),
		Min:  floats.Min(finals),
		Max:  floats.Max(finals),
		P10:  stat.Quantile(0.10, stat.Empirical, finals, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, finals, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, finals, nil),
	}
}

// ProbabilityAtLeast returns the share of paths whose final capital reaches target.
func (s *Simulation) ProbabilityAtLeast(target float64) float64 {
	if len(s.Paths) == 0 {
		return 0
	}
	n := 0
	for _, v := range s.Finals() {
		if v >= target {
			n++
		}
	}
	return float64(n) / float64(len(s.Paths))
}

// Band returns, for every year from 0 to Years, the q quantile of the
// capital across all paths.
func (s *Simulation) Band(q float64) []float64 {
	if len(s.Paths) == 0 {
		return nil
	}
	res := make([]float64, len(s.Paths[0]))
	column := make([]float64, len(s.Paths))
	for y := range res {
		for i, path := range s.Paths {
			column[i] = path[y]
		}
		sort.Float64s(column)
		res[y] = stat.Quantile(q, stat.Empirical, column, nil)
	}
	return res
}
