package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBudget(t *testing.T) {
	expenses := DefaultExpenses()
	got, err := SummarizeBudget(M(5000, ""), expenses)
	require.NoError(t, err)

	assert.True(t, M(2700, "").Equal(got.TotalExpenses), "total = %v", got.TotalExpenses)
	assert.True(t, M(2300, "").Equal(got.Surplus), "surplus = %v", got.Surplus)
	assert.False(t, got.Overspent())
	assert.Equal(t, expenses, got.Breakdown)

	shares := got.Shares()
	require.Len(t, shares, 5)
	assert.Equal(t, "Logement", shares[0].Category)
	assert.InDelta(t, 55.56, float64(shares[0].Percent), 0.01)
	assert.Equal(t, "Autres", shares[4].Category)
	var total float64
	for _, s := range shares {
		total += float64(s.Percent)
	}
	assert.InDelta(t, 100, total, 1e-9)
}

func TestSummarizeBudget_Overspent(t *testing.T) {
	got, err := SummarizeBudget(M(2000, "EUR"), DefaultExpenses())
	require.NoError(t, err)
	assert.True(t, got.Overspent())
	assert.True(t, M(-700, "EUR").Equal(got.Surplus), "surplus = %v", got.Surplus)
}

func TestSummarizeBudget_Empty(t *testing.T) {
	got, err := SummarizeBudget(M(1000, "USD"), nil)
	require.NoError(t, err)
	assert.True(t, got.TotalExpenses.IsZero())
	assert.True(t, M(1000, "USD").Equal(got.Surplus))
	assert.Empty(t, got.Shares())
}

func TestSummarizeBudget_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		income   Money
		expenses map[string]Money
	}{
		{"negative income", M(-1, ""), nil},
		{"negative expense", M(1000, ""), map[string]Money{"Transport": M(-5, "")}},
		{"mixed currencies", M(1000, "EUR"), map[string]Money{"Transport": M(5, "USD")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SummarizeBudget(tc.income, tc.expenses)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
