package renderer

import (
	"os"
	"strings"
	"time"

	"github.com/etnz/advisor"
)

// Now is the current time used in reports.
// ADV_TESTING_NOW overrides it so that tests can freeze the report date.
func Now() time.Time {
	if s := os.Getenv("ADV_TESTING_NOW"); s != "" {
		t, err := time.Parse("2006-01-02 15:04:05", s)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Profile is the renderable form of an advisor.Profile.
type Profile struct {
	Age              int    `json:"age"`
	Objective        string `json:"objective"`
	Initial          string `json:"initial"`
	Monthly          string `json:"monthly"`
	Horizon          int    `json:"horizon"`
	Risk             string `json:"risk"`
	Knowledge        string `json:"knowledge"`
	ESG              string `json:"esg"`
	Liquidity        string `json:"liquidity"`
	EmergencyFund    string `json:"emergencyFund"`
	Household        string `json:"household,omitempty"`
	RetirementAge    int    `json:"retirementAge"`
	RetirementIncome string `json:"retirementIncome"`
	RetirementYears  int    `json:"retirementYears"`
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// NewProfile converts p for rendering.
func NewProfile(p advisor.Profile) *Profile {
	return &Profile{
		Age:              p.Age,
		Objective:        p.Objective.String(),
		Initial:          p.Initial.String(),
		Monthly:          p.Monthly.String(),
		Horizon:          p.Horizon,
		Risk:             p.Risk.String(),
		Knowledge:        p.Knowledge.String(),
		ESG:              yesNo(p.ESG),
		Liquidity:        yesNo(p.Liquidity),
		EmergencyFund:    yesNo(p.EmergencyFund),
		Household:        p.Household,
		RetirementAge:    p.RetirementAge,
		RetirementIncome: p.RetirementIncome.String(),
		RetirementYears:  p.RetirementYears,
	}
}

// Allocation is the renderable form of an advisor.Allocation.
type Allocation struct {
	Rows        []AllocationRow `json:"rows"`
	Rationale   []string        `json:"rationale"`
	Adjustments int             `json:"adjustments"`
}

// AllocationRow is one bucket of the allocation.
type AllocationRow struct {
	Bucket  string `json:"bucket"`
	Percent int    `json:"percent"`
	Bar     string `json:"bar"`
}

// NewAllocation converts a for rendering. Empty buckets are skipped.
func NewAllocation(a advisor.Allocation) *Allocation {
	res := &Allocation{Adjustments: len(a.Adjustments())}
	for _, b := range advisor.Buckets {
		pct := a.Get(b)
		if pct == 0 {
			continue
		}
		res.Rows = append(res.Rows, AllocationRow{
			Bucket:  b.String(),
			Percent: pct,
			Bar:     bar(pct, 2),
		})
	}
	for _, r := range a.Rationale {
		res.Rationale = append(res.Rationale, r.Text)
	}
	return res
}

// bar draws pct as a horizontal bar, one block per step percents.
func bar(pct, step int) string {
	n := (pct + step/2) / step
	if n <= 0 && pct > 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Projection is the renderable form of a deterministic projection.
type Projection struct {
	Initial       string          `json:"initial"`
	Monthly       string          `json:"monthly"`
	Rate          string          `json:"rate"`
	Years         int             `json:"years"`
	Rows          []ProjectionRow `json:"rows"`
	Final         string          `json:"final"`
	Contributions string          `json:"contributions"`
	Growth        string          `json:"growth"`
}

// ProjectionRow is the capital at the end of one year.
type ProjectionRow struct {
	Year          int    `json:"year"`
	Capital       string `json:"capital"`
	Contributions string `json:"contributions"`
	Growth        string `json:"growth"`
}

// NewProjection converts the yearly values returned by advisor.Project for
// rendering. values[i] is the capital at the end of year i+1.
func NewProjection(initial, monthly advisor.Money, ratePct float64, values []float64) *Projection {
	cur := initial.Currency()
	if cur == "" {
		cur = monthly.Currency()
	}
	res := &Projection{
		Initial: initial.String(),
		Monthly: monthly.String(),
		Rate:    advisor.Percent(ratePct).String(),
		Years:   len(values),
	}
	for i, v := range values {
		paid := advisor.Contributions(initial.Float(), monthly.Float(), i+1)
		res.Rows = append(res.Rows, ProjectionRow{
			Year:          i + 1,
			Capital:       advisor.M(v, cur).String(),
			Contributions: advisor.M(paid, cur).String(),
			Growth:        advisor.M(v-paid, cur).SignedString(),
		})
	}
	if n := len(res.Rows); n > 0 {
		last := res.Rows[n-1]
		res.Final, res.Contributions, res.Growth = last.Capital, last.Contributions, last.Growth
	}
	return res
}

// Simulation is the renderable form of a Monte Carlo run.
type Simulation struct {
	Paths       int             `json:"paths"`
	Years       int             `json:"years"`
	Initial     string          `json:"initial"`
	Mean        string          `json:"mean"`
	Volatility  string          `json:"volatility"`
	Average     string          `json:"average"`
	Min         string          `json:"min"`
	Max         string          `json:"max"`
	P10         string          `json:"p10"`
	P50         string          `json:"p50"`
	P90         string          `json:"p90"`
	Target      string          `json:"target,omitempty"`
	Probability string          `json:"probability,omitempty"`
	Rows        []SimulationRow `json:"rows"`
}

// SimulationRow is the spread of the capital at the end of one year.
type SimulationRow struct {
	Year int    `json:"year"`
	P10  string `json:"p10"`
	P50  string `json:"p50"`
	P90  string `json:"p90"`
}

// NewSimulation converts s for rendering. When target is positive the share
// of paths reaching it is reported.
func NewSimulation(s *advisor.Simulation, cur string, target float64) *Simulation {
	m := func(v float64) string { return advisor.M(v, cur).String() }
	sum := s.Summary()
	res := &Simulation{
		Paths:      len(s.Paths),
		Years:      s.Params.Years,
		Initial:    m(s.Params.Initial),
		Mean:       advisor.Percent(s.Params.MeanPct).String(),
		Volatility: advisor.Percent(s.Params.VolatilityPct).String(),
		Average:    m(sum.Mean),
		Min:        m(sum.Min),
		Max:        m(sum.Max),
		P10:        m(sum.P10),
		P50:        m(sum.P50),
		P90:        m(sum.P90),
	}
	if target > 0 {
		res.Target = m(target)
		res.Probability = advisor.Percent(100 * s.ProbabilityAtLeast(target)).String()
	}
	low, mid, high := s.Band(0.1), s.Band(0.5), s.Band(0.9)
	for y := 1; y < len(mid); y++ {
		res.Rows = append(res.Rows, SimulationRow{Year: y, P10: m(low[y]), P50: m(mid[y]), P90: m(high[y])})
	}
	return res
}

// Retirement is the renderable form of an advisor.RetirementCheck.
type Retirement struct {
	Years     int    `json:"years"`
	Rate      string `json:"rate"`
	Inflation string `json:"inflation"`
	Income    string `json:"income"`
	Duration  int    `json:"duration"`
	Need      string `json:"need"`
	Projected string `json:"projected"`
	Gap       string `json:"gap"`
	OnTrack   bool   `json:"onTrack"`
}

// NewRetirement converts c, computed for p, for rendering.
func NewRetirement(p advisor.Profile, c advisor.RetirementCheck, ratePct, inflationPct float64) *Retirement {
	return &Retirement{
		Years:     c.Years,
		Rate:      advisor.Percent(ratePct).String(),
		Inflation: advisor.Percent(inflationPct).String(),
		Income:    p.RetirementIncome.String(),
		Duration:  p.RetirementYears,
		Need:      c.Need.String(),
		Projected: c.Projected.String(),
		Gap:       c.Gap.SignedString(),
		OnTrack:   c.OnTrack,
	}
}

// Budget is the renderable form of an advisor.Budget.
type Budget struct {
	Income    string      `json:"income"`
	Expenses  string      `json:"expenses"`
	Surplus   string      `json:"surplus"`
	Overspent bool        `json:"overspent"`
	Rows      []BudgetRow `json:"rows"`
}

// BudgetRow is one expense category.
type BudgetRow struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Percent  string `json:"percent"`
	Bar      string `json:"bar"`
}

// NewBudget converts b for rendering, largest category first.
func NewBudget(b advisor.Budget) *Budget {
	res := &Budget{
		Income:    b.Income.String(),
		Expenses:  b.TotalExpenses.String(),
		Surplus:   b.Surplus.SignedString(),
		Overspent: b.Overspent(),
	}
	for _, s := range b.Shares() {
		res.Rows = append(res.Rows, BudgetRow{
			Category: s.Category,
			Amount:   s.Amount.String(),
			Percent:  s.Percent.String(),
			Bar:      bar(int(s.Percent+0.5), 4),
		})
	}
	return res
}
