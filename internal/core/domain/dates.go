package domain

import "time"

// DateLayout is the calendar-date key used throughout the document.
const DateLayout = "2006-01-02"

// FormatDate renders the local calendar date of t, zero-padded, with no
// timezone conversion.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a YYYY-MM-DD string as a plain calendar date.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts a calendar date by n whole days, rolling over month and year
// boundaries. Negative n walks backward. A malformed date comes back unchanged
// so callers never have to handle a parse failure mid-walk.
func AddDays(date string, n int) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// DaysBetween returns the whole-day difference to - from.
func DaysBetween(from, to string) int {
	a, okA := ParseDate(from)
	b, okB := ParseDate(to)
	if !okA || !okB {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// RamadanDay numbers a date against the configured start: the start date is
// day 1. Dates before the start yield zero or negative values and values above
// RamadanDays mean the month is over; the result is deliberately unclamped so
// callers can tell those states apart.
func RamadanDay(date, startDate string) int {
	if _, ok := ParseDate(date); !ok {
		return 0
	}
	if _, ok := ParseDate(startDate); !ok {
		return 0
	}
	return DaysBetween(startDate, date) + 1
}
