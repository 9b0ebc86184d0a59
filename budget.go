package advisor

import (
	"cmp"
	"errors"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Budget summarizes a monthly income against expenses by category.
type Budget struct {
	Income        Money
	TotalExpenses Money
	Surplus       Money // Income - TotalExpenses, negative when overspending
	Breakdown     map[string]Money
}

// DefaultExpenses are the categories proposed by the budget tracker.
func DefaultExpenses() map[string]Money {
	return map[string]Money{
		"Logement":       M(1500, ""),
		"Nourriture":     M(600, ""),
		"Transport":      M(300, ""),
		"Divertissement": M(200, ""),
		"Autres":         M(100, ""),
	}
}

// SummarizeBudget totals expenses and computes the surplus. All amounts must be
// non negative and share a currency (amounts without one adopt it). The
// breakdown is the expenses map itself.
func SummarizeBudget(income Money, expenses map[string]Money) (Budget, error) {
	var errs []error
	if income.IsNegative() {
		errs = append(errs, invalidf("income %v must not be negative", income))
	}
	total := M(0, income.Currency())
	for _, name := range slices.Sorted(maps.Keys(expenses)) {
		v := expenses[name]
		switch {
		case v.IsNegative():
			errs = append(errs, invalidf("expense %q of %v must not be negative", name, v))
		case !total.Compatible(v):
			errs = append(errs, invalidf("expense %q is in %s, expected %s", name, v.Currency(), total.Currency()))
		default:
			total = total.Add(v)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Budget{}, err
	}
	income = income.WithCurrency(total.Currency())
	return Budget{
		Income:        income,
		TotalExpenses: total,
		Surplus:       income.Sub(total),
		Breakdown:     expenses,
	}, nil
}

// Overspent reports whether expenses exceed income.
func (b Budget) Overspent() bool { return b.Surplus.IsNegative() }

// Share is one category of the budget with its weight in the total expenses.
type Share struct {
	Category string
	Amount   Money
	Percent  Percent
}

// Shares returns the categories, largest first, with their percentage of the
// total expenses.
func (b Budget) Shares() []Share {
	res := make([]Share, 0, len(b.Breakdown))
	hundred := decimal.NewFromInt(100)
	for name, v := range b.Breakdown {
		s := Share{Category: name, Amount: v}
		if !b.TotalExpenses.IsZero() {
			s.Percent = Percent(v.Decimal().Mul(hundred).Div(b.TotalExpenses.Decimal()).InexactFloat64())
		}
		res = append(res, s)
	}
	slices.SortFunc(res, func(a, b Share) int {
		if c := b.Amount.Decimal().Cmp(a.Amount.Decimal()); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return res
}
