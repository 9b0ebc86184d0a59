package date

import (
	"fmt"
	"strings"
)

// Period is a lookback window ending on a given day, as offered by market
// data providers.
type Period int

const (
	OneDay Period = iota
	FiveDays
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	FiveYears
)

// Periods lists every period, shortest first.
var Periods = []Period{OneDay, FiveDays, OneMonth, ThreeMonths, SixMonths, OneYear, FiveYears}

func (p Period) String() string {
	switch p {
	case OneDay:
		return "1d"
	case FiveDays:
		return "5d"
	case OneMonth:
		return "1mo"
	case ThreeMonths:
		return "3mo"
	case SixMonths:
		return "6mo"
	case OneYear:
		return "1y"
	case FiveYears:
		return "5y"
	default:
		panic(fmt.Sprintf("unknown period %d", int(p)))
	}
}

// ParsePeriod parses "1d", "5d", "1mo", "3mo", "6mo", "1y" or "5y".
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "1d", "day":
		return OneDay, nil
	case "5d", "week":
		return FiveDays, nil
	case "1mo", "month":
		return OneMonth, nil
	case "3mo", "quarter":
		return ThreeMonths, nil
	case "6mo":
		return SixMonths, nil
	case "1y", "year":
		return OneYear, nil
	case "5y":
		return FiveYears, nil
	default:
		return OneMonth, fmt.Errorf("unknown period %q want one of 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y", p)
	}
}

// Range returns the range of days covered by the period ending on end
// (inclusive).
func (p Period) Range(end Date) Range {
	var from Date
	switch p {
	case OneDay:
		from = end
	case FiveDays:
		from = end.Add(-4)
	case OneMonth:
		from = end.AddMonths(-1).Add(1)
	case ThreeMonths:
		from = end.AddMonths(-3).Add(1)
	case SixMonths:
		from = end.AddMonths(-6).Add(1)
	case OneYear:
		from = end.AddMonths(-12).Add(1)
	case FiveYears:
		from = end.AddMonths(-60).Add(1)
	default:
		panic(fmt.Sprintf("unknown period %d", int(p)))
	}
	return Range{From: from, To: end}
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
