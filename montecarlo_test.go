package advisor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate(t *testing.T) {
	sim, err := Simulate(rand.NewPCG(1, 2), SimulationParams{
		Initial:       1000,
		Years:         10,
		Paths:         500,
		MeanPct:       7,
		VolatilityPct: 20,
	})
	require.NoError(t, err)
	require.Len(t, sim.Paths, 500)
	for i, path := range sim.Paths {
		require.Len(t, path, 11, "path %d", i)
		assert.Equal(t, 1000.0, path[0], "path %d", i)
	}
	assert.Len(t, sim.Display(DefaultDisplayPaths), DefaultDisplayPaths)
	assert.Len(t, sim.Display(5000), 500)
	assert.Empty(t, sim.Display(-1))

	s := sim.Summary()
	assert.LessOrEqual(t, s.Min, s.P10)
	assert.LessOrEqual(t, s.P10, s.P50)
	assert.LessOrEqual(t, s.P50, s.P90)
	assert.LessOrEqual(t, s.P90, s.Max)
	// 1000*1.07^10 is about 1967, the sample mean stays close.
	assert.InDelta(t, 1967, s.Mean, 200)
	assert.Equal(t, 1.0, sim.ProbabilityAtLeast(0))
}

func TestSimulate_Reproducible(t *testing.T) {
	p := SimulationParams{Initial: 1000, Years: 5, Paths: 100, MeanPct: 7, VolatilityPct: 20}
	a, err := Simulate(rand.NewPCG(42, 42), p)
	require.NoError(t, err)
	b, err := Simulate(rand.NewPCG(42, 42), p)
	require.NoError(t, err)
	assert.Equal(t, a.Paths, b.Paths)

	c, err := Simulate(rand.NewPCG(7, 7), p)
	require.NoError(t, err)
	assert.NotEqual(t, a.Paths, c.Paths)
}

func TestSimulate_NoVolatility(t *testing.T) {
	sim, err := Simulate(rand.NewPCG(1, 1), SimulationParams{Initial: 1000, Years: 3, Paths: 100, MeanPct: 10})
	require.NoError(t, err)
	want := 1000 * 1.1 * 1.1 * 1.1
	for _, path := range sim.Paths {
		assert.InDelta(t, want, path[3], 1e-9)
	}
	s := sim.Summary()
	assert.InDelta(t, want, s.Mean, 1e-9)
	assert.InDelta(t, want, s.P10, 1e-9)
	assert.InDelta(t, want, s.P90, 1e-9)
	assert.Equal(t, 0.0, sim.ProbabilityAtLeast(want+1))
}

func TestSimulate_Limits(t *testing.T) {
	p := SimulationParams{Initial: 1000, Years: 10, Paths: 10, MeanPct: 7, VolatilityPct: 20}
	_, err := Simulate(rand.NewPCG(1, 2), p)
	assert.ErrorIs(t, err, ErrInvalidInput)

	p.Limits = PathLimits{Min: 1, Max: 20}
	sim, err := Simulate(rand.NewPCG(1, 2), p)
	require.NoError(t, err)
	assert.Len(t, sim.Paths, 10)

	p.Paths = DefaultPathLimits.Max + 1
	p.Limits = PathLimits{}
	_, err = Simulate(rand.NewPCG(1, 2), p)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSimulate_InvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		p    SimulationParams
	}{
		{"no year", SimulationParams{Initial: 1000, Years: 0, Paths: 100}},
		{"negative initial", SimulationParams{Initial: -1, Years: 10, Paths: 100}},
		{"negative volatility", SimulationParams{Initial: 1000, Years: 10, Paths: 100, VolatilityPct: -5}},
		{"NaN mean", SimulationParams{Initial: 1000, Years: 10, Paths: 100, MeanPct: math.NaN(), VolatilityPct: 20}},
		{"infinite mean", SimulationParams{Initial: 1000, Years: 10, Paths: 100, MeanPct: math.Inf(-1), VolatilityPct: 20}},
		{"NaN volatility", SimulationParams{Initial: 1000, Years: 10, Paths: 100, MeanPct: 7, VolatilityPct: math.NaN()}},
		{"infinite volatility", SimulationParams{Initial: 1000, Years: 10, Paths: 100, MeanPct: 7, VolatilityPct: math.Inf(1)}},
		{"infinite initial", SimulationParams{Initial: math.Inf(1), Years: 10, Paths: 100}},
		{"overflow", SimulationParams{Initial: math.MaxFloat64 / 2, Years: 10, Paths: 100, MeanPct: 100}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(rand.NewPCG(1, 2), tc.p)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSimulation_Band(t *testing.T) {
	sim, err := Simulate(rand.NewPCG(3, 4), SimulationParams{Initial: 500, Years: 8, Paths: 200, MeanPct: 5, VolatilityPct: 15})
	require.NoError(t, err)

	low, mid, high := sim.Band(0.1), sim.Band(0.5), sim.Band(0.9)
	require.Len(t, mid, 9)
	assert.Equal(t, 500.0, low[0])
	assert.Equal(t, 500.0, high[0])
	for y := range mid {
		assert.LessOrEqual(t, low[y], mid[y], "year %d", y)
		assert.LessOrEqual(t, mid[y], high[y], "year %d", y)
	}
	s := sim.Summary()
	assert.Equal(t, s.P50, mid[8])
	assert.Nil(t, (&Simulation{}).Band(0.5))
}
