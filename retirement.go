package advisor

import "github.com/shopspring/decimal"

// DefaultInflation is the yearly inflation rate, in percent, assumed when none is given.
const DefaultInflation = 2.0

// RetirementNeed returns the total amount needed to withdraw income every year
// for years years, the income growing with inflationPct each year:
//
//	need = Σ income*(1+inflation/100)^i for i in [0, years)
func RetirementNeed(income Money, years int, inflationPct float64) (Money, error) {
	switch {
	case years < 1:
		return Money{}, invalidf("retirement years %d must be at least 1", years)
	case !finite(inflationPct) || inflationPct <= -100:
		return Money{}, invalidf("inflation %g%% must be a finite number above -100%%", inflationPct)
	case income.IsNegative():
		return Money{}, invalidf("retirement income %v must not be negative", income)
	}
	growth := decimal.NewFromFloat(inflationPct).Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1))
	factor := decimal.NewFromInt(1)
	total := decimal.Zero
	for range years {
		total = total.Add(income.Decimal().Mul(factor))
		factor = factor.Mul(growth)
	}
	return M(total, income.Currency()), nil
}

// RetirementCheck compares the capital projected at retirement with the need.
type RetirementCheck struct {
	Years     int   // years until retirement
	Need      Money // total needed over the retirement
	Projected Money // capital projected at retirement
	Gap       Money // Projected - Need, negative when short
	OnTrack   bool
}

// CheckRetirement projects the profile's savings until retirement at ratePct
// and compares the result with the retirement need.
func CheckRetirement(p Profile, ratePct, inflationPct float64) (RetirementCheck, error) {
	need, err := RetirementNeed(p.RetirementIncome, p.RetirementYears, inflationPct)
	if err != nil {
		return RetirementCheck{}, err
	}
	years := p.YearsToRetirement()
	series, err := Project(p.Initial.Float(), p.Monthly.Float(), ratePct, years)
	if err != nil {
		return RetirementCheck{}, err
	}
	cur := p.Initial.Currency()
	if cur == "" {
		cur = p.Monthly.Currency()
	}
	projected := M(series[len(series)-1], cur).Round()
	need = need.WithCurrency(cur).Round()
	if !projected.Compatible(need) {
		return RetirementCheck{}, invalidf("retirement income in %s but savings in %s", need.Currency(), projected.Currency())
	}
	gap := projected.Sub(need)
	return RetirementCheck{
		Years:     years,
		Need:      need,
		Projected: projected,
		Gap:       gap,
		OnTrack:   !gap.IsNegative(),
	}, nil
}
