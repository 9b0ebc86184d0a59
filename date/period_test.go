package date

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Errorf("ParsePeriod(%q) error = %v", p, err)
			continue
		}
		if got != p {
			t.Errorf("ParsePeriod(%q) = %v, want %v", p, got, p)
		}
	}
	if _, err := ParsePeriod("2w"); err == nil {
		t.Errorf("ParsePeriod(\"2w\") want error")
	}
	if got, err := ParsePeriod(" 1Y "); err != nil || got != OneYear {
		t.Errorf("ParsePeriod(\" 1Y \") = %v, %v want 1y", got, err)
	}
}

func TestPeriodRange(t *testing.T) {
	end := New(2025, time.September, 10)
	testCases := []struct {
		period Period
		want   Range
	}{
		{OneDay, Range{From: end, To: end}},
		{FiveDays, Range{From: New(2025, time.September, 6), To: end}},
		{OneMonth, Range{From: New(2025, time.August, 11), To: end}},
		{ThreeMonths, Range{From: New(2025, time.June, 11), To: end}},
		{SixMonths, Range{From: New(2025, time.March, 11), To: end}},
		{OneYear, Range{From: New(2024, time.September, 11), To: end}},
		{FiveYears, Range{From: New(2020, time.September, 11), To: end}},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := tc.period.Range(end); got != tc.want {
				t.Errorf("%v.Range(%v) = %v, want %v", tc.period, end, got, tc.want)
			}
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{From: New(2025, time.January, 30), To: New(2025, time.February, 2)}
	if !r.Contains(New(2025, time.February, 1)) {
		t.Errorf("Contains(2025-02-01) = false, want true")
	}
	if r.Contains(New(2025, time.February, 3)) {
		t.Errorf("Contains(2025-02-03) = true, want false")
	}
	if (Range{From: r.To, To: r.From}).Contains(r.From) {
		t.Errorf("inverted range Contains(%v) = true, want false", r.From)
	}
}
