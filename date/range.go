package date

// Range is a span of days, both boundaries included.
type Range struct{ From, To Date }

// Contains reports whether day falls within r.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }
