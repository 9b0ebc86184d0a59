package advisor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	got, err := Project(1000, 100, 5, 10)
	require.NoError(t, err)
	require.Len(t, got, 10)

	assert.Equal(t, 2250.0, got[0])
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1]*1.05+1200, got[i], "year %d", i+1)
	}
}

func TestProject_ZeroRate(t *testing.T) {
	got, err := Project(500, 50, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1100, 1700, 2300}, got)
	assert.Equal(t, got[2], Contributions(500, 50, 3))
}

func TestProject_InvalidInput(t *testing.T) {
	testCases := []struct {
		name             string
		initial, monthly float64
		rate             float64
		years            int
	}{
		{"no year", 1000, 100, 5, 0},
		{"negative rate", 1000, 100, -1, 10},
		{"rate above 100", 1000, 100, 100.5, 10},
		{"negative initial", -1, 100, 5, 10},
		{"negative monthly", 1000, -100, 5, 10},
		{"NaN rate", 1000, 100, math.NaN(), 10},
		{"infinite rate", 1000, 100, math.Inf(1), 10},
		{"NaN initial", math.NaN(), 100, 5, 10},
		{"infinite monthly", 1000, math.Inf(1), 5, 10},
		{"overflow", math.MaxFloat64 / 2, 0, 100, 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Project(tc.initial, tc.monthly, tc.rate, tc.years)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
