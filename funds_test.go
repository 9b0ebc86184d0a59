package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFunds(t *testing.T) {
	funds := DefaultFunds()
	require.Len(t, funds, 6)

	veqt, ok := FindFund(funds, "veqt")
	require.True(t, ok)
	assert.Equal(t, HighRisk, veqt.Risk)
	assert.True(t, veqt.MeanReturn.Equal(8))

	_, ok = FindFund(funds, "SPY")
	assert.False(t, ok)
}

func TestCompareFunds(t *testing.T) {
	funds := DefaultFunds()
	veqt, _ := FindFund(funds, "VEQT")
	xeqt, _ := FindFund(funds, "XEQT")

	c := CompareFunds(veqt, xeqt)
	assert.True(t, c.MeanReturn.Equal(0.2), "return diff %v", c.MeanReturn)
	assert.True(t, c.Fee.Equal(0.05), "fee diff %v", c.Fee)
	assert.True(t, c.StdDev.Equal(0.5), "stddev diff %v", c.StdDev)
	assert.InDelta(t, (8-0.25)/15, veqt.Sharpe(), 1e-9)
}

func TestReadFunds(t *testing.T) {
	in := `symbol,name,return,risk,fee,stddev,description
veqt,Vanguard All-Equity,8%,Élevé,0.25%,15%,"Global, 100% equities"
VCNS, Vanguard Conservative, 5, low, 0.25, 7, Conservative
`
	funds, err := ReadFunds(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, funds, 2)
	assert.Equal(t, "VEQT", funds[0].Symbol)
	assert.Equal(t, HighRisk, funds[0].Risk)
	assert.Equal(t, "Global, 100% equities", funds[0].Description)
	assert.True(t, funds[1].StdDev.Equal(7))
	assert.Equal(t, LowRisk, funds[1].Risk)
}

func TestReadFunds_Errors(t *testing.T) {
	_, err := ReadFunds(strings.NewReader("ticker,name,return,risk,fee,stddev,description\n"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	funds, err := ReadFunds(strings.NewReader(`symbol,name,return,risk,fee,stddev,description
AAA,A,abc,low,0.1,5,x
BBB,B,5,low,0.1,5,y
`))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "line 2")
	require.Len(t, funds, 1)
	assert.Equal(t, "BBB", funds[0].Symbol)

	_, err = ReadFunds(strings.NewReader(""))
	assert.Error(t, err)
}
