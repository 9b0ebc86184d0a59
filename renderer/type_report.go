package renderer

// Report gathers every section of the full advisory report. Nil sections are
// left out.
type Report struct {
	Title      string      `json:"title"`
	AsOf       string      `json:"asOf"`
	Profile    *Profile    `json:"profile"`
	Allocation *Allocation `json:"allocation"`
	Projection *Projection `json:"projection,omitempty"`
	Simulation *Simulation `json:"simulation,omitempty"`
	Retirement *Retirement `json:"retirement,omitempty"`
	Budget     *Budget     `json:"budget,omitempty"`
	Watchlist  *Watchlist  `json:"watchlist,omitempty"`
}
