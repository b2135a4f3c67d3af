// Package calendar provides Gregorian period boundaries and equality predicates.
//
// Every function works in the location carried by its argument; nothing is
// converted to UTC or to the local zone. End-of-period values are the last
// representable nanosecond of the period.
package calendar

import "time"

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// StartOfWeek returns the start of the ISO week (Monday) containing t.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// EndOfWeek returns the last nanosecond of the ISO week (Sunday) containing t.
func EndOfWeek(t time.Time) time.Time {
	start := StartOfWeek(t)
	y, m, d := start.Date()
	return time.Date(y, m, d+7, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// Quarter returns the calendar quarter (1-4) of t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// StartOfQuarter returns midnight on the first day of t's quarter.
func StartOfQuarter(t time.Time) time.Time {
	first := time.Month((Quarter(t)-1)*3 + 1)
	return time.Date(t.Year(), first, 1, 0, 0, 0, 0, t.Location())
}

// EndOfQuarter returns the last nanosecond of t's quarter.
func EndOfQuarter(t time.Time) time.Time {
	next := time.Month(Quarter(t)*3 + 1)
	return time.Date(t.Year(), next, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// StartOfYear returns midnight on January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location()).Add(-time.Nanosecond)
}

// SameYear reports whether a and b fall in the same year, read in a's location.
func SameYear(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year()
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMinute reports whether a and b fall in the same wall-clock minute,
// ignoring seconds and sub-second components.
func SameMinute(a, b time.Time) bool {
	if !SameDay(a, b) {
		return false
	}
	b = b.In(a.Location())
	return a.Hour() == b.Hour() && a.Minute() == b.Minute()
}
