// Package date provides a day-granularity Date and the lookback periods used
// to request market history.
package date

import "time"

// DateFormat is the ISO-8601 layout of a Date.
const DateFormat = "2006-01-02"

// Date is a calendar day, without time of day or location.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date for year, month and day, normalized like time.Date:
// February 30 becomes March 2.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the day of t, in t's location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// Today returns the current day in the local time zone.
func Today() Date { return FromTime(time.Now()) }

// time is midnight UTC of d. Two equal dates give equal times.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }

// Add moves d by n days.
func (d Date) Add(n int) Date { return New(d.y, d.m, d.d+n) }

// AddMonths moves d by n months. Overflowing days roll into the next month.
func (d Date) AddMonths(n int) Date { return New(d.y, d.m+time.Month(n), d.d) }

func (d Date) String() string { return d.time().Format(DateFormat) }
