package advisor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfileIsValid(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())
}

func TestProfileValidate(t *testing.T) {
	testCases := []struct {
		name string
		edit func(p *Profile)
	}{
		{"minor", func(p *Profile) { p.Age = 17 }},
		{"too old", func(p *Profile) { p.Age, p.RetirementAge = 101, 101 }},
		{"no horizon", func(p *Profile) { p.Horizon = 0 }},
		{"negative initial", func(p *Profile) { p.Initial = M(-1, "") }},
		{"negative monthly", func(p *Profile) { p.Monthly = M(-1, "") }},
		{"retired before now", func(p *Profile) { p.RetirementAge = p.Age - 1 }},
		{"no retirement years", func(p *Profile) { p.RetirementYears = 0 }},
		{"negative income", func(p *Profile) { p.RetirementIncome = M(-1, "") }},
		{"mixed currencies", func(p *Profile) { p.Initial, p.Monthly = M(1, "EUR"), M(1, "USD") }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultProfile()
			tc.edit(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidInput)
		})
	}
}

func TestProfileValidate_ReportsEveryFailure(t *testing.T) {
	p := DefaultProfile()
	p.Age, p.Horizon, p.RetirementYears = 10, 0, 0
	err := p.Validate()
	require.Error(t, err)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 3)
}

func TestDecodeProfile(t *testing.T) {
	in := `
age: 42
objective: home-purchase
initial: 25000 EUR
monthly: 800 EUR
horizon: 4
risk: low
liquidity: true
`
	p, err := DecodeProfile(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 42, p.Age)
	assert.Equal(t, HomePurchase, p.Objective)
	assert.True(t, M(25000, "EUR").Equal(p.Initial))
	assert.Equal(t, LowRisk, p.Risk)
	assert.True(t, p.Liquidity)
	assert.False(t, p.ESG)
	// untouched fields keep their default.
	assert.Equal(t, 65, p.RetirementAge)
	assert.Equal(t, 25, p.RetirementYears)
}

func TestDecodeProfile_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"unknown field", "salary: 10"},
		{"unknown objective", "objective: lottery"},
		{"bad amount", "initial: lots"},
		{"invalid profile", "age: 12"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProfile(strings.NewReader(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestDecodeProfile_Empty(t *testing.T) {
	p, err := DecodeProfile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), p)
}

func TestEncodeProfile(t *testing.T) {
	want := DefaultProfile().InCurrency("CAD")
	want.ESG = true
	var buf bytes.Buffer
	require.NoError(t, EncodeProfile(&buf, want))
	assert.Contains(t, buf.String(), "objective: retirement")
	assert.Contains(t, buf.String(), "initial: 1000 CAD")

	got, err := DecodeProfile(&buf)
	require.NoError(t, err)
	assert.True(t, want.Initial.Equal(got.Initial))
	assert.Equal(t, want.ESG, got.ESG)
	assert.Equal(t, want.Risk, got.Risk)
}

func TestYearsToRetirement(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 35, p.YearsToRetirement())
	p.RetirementAge = p.Age
	assert.Equal(t, p.Horizon, p.YearsToRetirement())
}
