package advisor

import "math"

// MaxRate is the highest annual rate, in percent, accepted by Project.
const MaxRate = 100

// Project returns the capital at the end of each year when initial is invested
// at ratePct per year and monthly is contributed every month.
//
// Each year the capital grows by the rate and then receives twelve
// contributions:
//
//	capital = capital*(1+rate/100) + 12*monthly
//
// The result holds one value per year, the starting capital excluded.
func Project(initial, monthly, ratePct float64, years int) ([]float64, error) {
	switch {
	case !finite(initial, monthly, ratePct):
		return nil, invalidf("initial %g, monthly %g and rate %g must be finite", initial, monthly, ratePct)
	case years < 1:
		return nil, invalidf("years %d must be at least 1", years)
	case ratePct < 0 || ratePct > MaxRate:
		return nil, invalidf("rate %g%% must be between 0 and %d", ratePct, MaxRate)
	case initial < 0:
		return nil, invalidf("initial amount %g must not be negative", initial)
	case monthly < 0:
		return nil, invalidf("monthly contribution %g must not be negative", monthly)
	}

	growth := 1 + ratePct/100
	yearly := 12 * monthly
	res := make([]float64, years)
	capital := initial
	for i := range res {
		capital = capital*growth + yearly
		res[i] = capital
	}
	if !finite(capital) {
		return nil, invalidf("projection of %g over %d years overflows", initial, years)
	}
	return res, nil
}

// finite reports whether no value is NaN or infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Contributions returns the total amount invested after years: the initial
// amount plus every monthly contribution.
func Contributions(initial, monthly float64, years int) float64 {
	return initial + 12*monthly*float64(years)
}
