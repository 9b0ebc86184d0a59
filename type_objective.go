package advisor

import "strings"

// Objective is the user's main investment goal. It selects the base allocation template.
type Objective int

const (
	// Retirement saves for the years after work.
	Retirement Objective = iota
	// HomePurchase saves for a down payment.
	HomePurchase
	// Travel saves for a trip.
	Travel
	// PassiveIncome builds a portfolio that pays regular income.
	PassiveIncome
	// OtherObjective is anything else.
	OtherObjective
)

// Objectives lists all objectives in display order.
var Objectives = []Objective{Retirement, HomePurchase, Travel, PassiveIncome, OtherObjective}

func (o Objective) String() string {
	switch o {
	case Retirement:
		return "retirement"
	case HomePurchase:
		return "home-purchase"
	case Travel:
		return "travel"
	case PassiveIncome:
		return "passive-income"
	case OtherObjective:
		return "other"
	default:
		return "unknown"
	}
}

// ParseObjective parses a string into an Objective.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "retirement", "retire":
		return Retirement, nil
	case "home-purchase", "home", "house":
		return HomePurchase, nil
	case "travel", "trip":
		return Travel, nil
	case "passive-income", "income":
		return PassiveIncome, nil
	case "other":
		return OtherObjective, nil
	default:
		return 0, invalidf("unknown objective %q (retirement, home-purchase, travel, passive-income, other)", s)
	}
}

func (o Objective) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Objective) UnmarshalText(text []byte) (err error) {
	*o, err = ParseObjective(string(text))
	return err
}
