package advisor

import (
	"fmt"
	"math"
)

// Bucket is an asset class of the suggested allocation.
type Bucket int

const (
	DomesticEquity Bucket = iota
	InternationalEquity
	FixedIncome
	ESGFunds
	Cash
	numBuckets
)

// Buckets lists all buckets in display order.
var Buckets = []Bucket{DomesticEquity, InternationalEquity, FixedIncome, ESGFunds, Cash}

func (b Bucket) String() string {
	switch b {
	case DomesticEquity:
		return "Domestic equity"
	case InternationalEquity:
		return "International equity"
	case FixedIncome:
		return "Fixed income"
	case ESGFunds:
		return "ESG funds"
	case Cash:
		return "Cash"
	default:
		return "unknown"
	}
}

// Split is a percentage per bucket, indexed by Bucket.
type Split [numBuckets]float64

// Sum returns the total of all buckets.
func (s Split) Sum() float64 {
	var t float64
	for _, v := range s {
		t += v
	}
	return t
}

// baseSplits are the templates selected by the objective.
var baseSplits = map[Objective]Split{
	Retirement:     {35, 25, 30, 5, 5},
	HomePurchase:   {20, 10, 50, 5, 15},
	Travel:         {15, 10, 45, 5, 25},
	PassiveIncome:  {25, 20, 40, 10, 5},
	OtherObjective: {30, 25, 30, 10, 5},
}

// Rule names the step of the allocation engine that produced a Reason.
type Rule string

const (
	ObjectiveRule Rule = "objective"
	RiskRule      Rule = "risk"
	HorizonRule   Rule = "horizon"
	ESGRule       Rule = "esg"
	LiquidityRule Rule = "liquidity"
)

// Reason is one sentence of the allocation rationale.
type Reason struct {
	Rule    Rule
	Applied bool // the rule changed the split
	Text    string
}

// Allocation is the suggested split of a portfolio across buckets.
//
// Percentages are integers, non negative, and sum to exactly 100.
type Allocation struct {
	Percent   [numBuckets]int
	Rationale []Reason
}

// Get returns the percentage of bucket b.
func (a Allocation) Get(b Bucket) int { return a.Percent[b] }

// Adjustments returns the reasons of the rules that changed the split.
func (a Allocation) Adjustments() []Reason {
	var res []Reason
	for _, r := range a.Rationale {
		if r.Applied {
			res = append(res, r)
		}
	}
	return res
}

// Thresholds of the horizon rule, in years.
const (
	ShortHorizon = 5
	LongHorizon  = 15
)

// ComputeAllocation maps a profile to a target allocation.
//
// It starts from the objective's template, shifts points between equities and
// fixed income for the risk tolerance and the horizon, funds the ESG bucket
// from equities, funds cash for a liquidity need, and finally normalizes to
// 100.
func ComputeAllocation(p Profile) Allocation {
	base, ok := baseSplits[p.Objective]
	if !ok {
		base = baseSplits[OtherObjective]
	}
	s := base
	var why []Reason

	why = append(why, Reason{
		Rule:    ObjectiveRule,
		Applied: true,
		Text: fmt.Sprintf("Your %s objective sets the starting point: %.0f%% domestic equity, %.0f%% international equity, %.0f%% fixed income, %.0f%% ESG funds and %.0f%% cash.",
			p.Objective, s[DomesticEquity], s[InternationalEquity], s[FixedIncome], s[ESGFunds], s[Cash]),
	})

	switch p.Risk {
	case LowRisk:
		moved := s.toFixedIncome(5)
		why = append(why, Reason{RiskRule, moved > 0,
			fmt.Sprintf("A low risk tolerance moves %.0f points from equities to fixed income to soften the swings.", moved)})
	case HighRisk:
		moved := s.fromFixedIncome(10)
		why = append(why, Reason{RiskRule, moved > 0,
			fmt.Sprintf("A high risk tolerance moves %.0f points from fixed income to equities for more expected growth.", moved)})
	default:
		why = append(why, Reason{RiskRule, false,
			"A moderate risk tolerance keeps the balance between equities and fixed income unchanged."})
	}

	switch {
	case p.Horizon <= ShortHorizon:
		moved := s.toFixedIncome(5)
		why = append(why, Reason{HorizonRule, moved > 0,
			fmt.Sprintf("A short horizon of %d years moves %.0f points from equities to fixed income, there is little time to recover from a drop.", p.Horizon, moved)})
	case p.Horizon >= LongHorizon:
		moved := s.fromFixedIncome(10)
		why = append(why, Reason{HorizonRule, moved > 0,
			fmt.Sprintf("A long horizon of %d years moves %.0f points from fixed income to equities, time smooths out volatility.", p.Horizon, moved)})
	default:
		why = append(why, Reason{HorizonRule, false,
			fmt.Sprintf("A horizon of %d years needs no change to the equity and fixed income balance.", p.Horizon)})
	}

	if p.ESG {
		moved := s.move(DomesticEquity, ESGFunds, 5) + s.move(InternationalEquity, ESGFunds, 5)
		if moved > 0 {
			why = append(why, Reason{ESGRule, true,
				fmt.Sprintf("Your preference for responsible investments moves %.0f points from equities to ESG funds.", moved)})
		}
	}

	if p.Liquidity {
		const total = 10
		share := float64(total / 3)
		moved := s.move(DomesticEquity, Cash, share) + s.move(InternationalEquity, Cash, share) + s.move(FixedIncome, Cash, share)
		// cash receives the full amount, normalization absorbs the remainder.
		s[Cash] += total - 3*share
		moved += total - 3*share
		why = append(why, Reason{LiquidityRule, true,
			fmt.Sprintf("Your short-term liquidity need sets aside %.0f points in cash, drawn evenly from equities and fixed income.", moved)})
	}

	return Allocation{Percent: s.normalize(), Rationale: why}
}

// move transfers up to amount points from one bucket to another and returns
// the amount actually moved. A bucket never goes below zero.
func (s *Split) move(from, to Bucket, amount float64) float64 {
	amount = math.Min(amount, s[from])
	if amount <= 0 {
		return 0
	}
	s[from] -= amount
	s[to] += amount
	return amount
}

// toFixedIncome moves up to each points from both equity buckets to fixed income.
func (s *Split) toFixedIncome(each float64) float64 {
	return s.move(DomesticEquity, FixedIncome, each) + s.move(InternationalEquity, FixedIncome, each)
}

// fromFixedIncome moves up to total points from fixed income, split evenly across both equity buckets.
func (s *Split) fromFixedIncome(total float64) float64 {
	half := math.Min(total, s[FixedIncome]) / 2
	return s.move(FixedIncome, DomesticEquity, half) + s.move(FixedIncome, InternationalEquity, half)
}

// normalize rescales the split to 100 and rounds it to integers.
// The rounding residual goes to the largest bucket, so the result sums to
// exactly 100 and no bucket is negative.
func (s Split) normalize() [numBuckets]int {
	var res [numBuckets]int
	total := s.Sum()
	if total <= 0 {
		res[Cash] = 100
		return res
	}
	sum, largest := 0, Bucket(0)
	for i, v := range s {
		res[i] = int(math.Round(v * 100 / total))
		sum += res[i]
		if res[i] > res[largest] {
			largest = Bucket(i)
		}
	}
	res[largest] += 100 - sum
	return res
}
