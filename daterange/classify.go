package daterange

import (
	"time"

	"github.com/dslh/daterange/internal/calendar"
)

// Classify reports which shape the interval from..to has. Checks run in
// priority order and the first match wins, since a whole year is also a run of
// whole months. Boundaries are compared at minute granularity in from's
// location; to is read in the same location.
//
// from must not be after to; the result is unspecified otherwise.
func Classify(from, to time.Time) Shape {
	to = to.In(from.Location())

	switch {
	case calendar.SameMinute(calendar.StartOfYear(from), from) &&
		calendar.SameMinute(calendar.EndOfYear(to), to):
		return Year
	case calendar.SameMinute(calendar.StartOfQuarter(from), from) &&
		calendar.SameMinute(calendar.EndOfQuarter(to), to) &&
		calendar.Quarter(from) == calendar.Quarter(to):
		return Quarter
	case calendar.SameMinute(calendar.StartOfMonth(from), from) &&
		calendar.SameMinute(calendar.EndOfMonth(to), to):
		return Month
	case !calendar.SameYear(from, to):
		return AcrossYears
	case !calendar.SameMonth(from, to):
		return AcrossMonths
	case !calendar.SameDay(from, to):
		return AcrossDays
	case isFullDay(from, to):
		return FullDay
	default:
		return SameDay
	}
}

// startsDay reports whether t sits on the first minute of its day.
func startsDay(t time.Time) bool {
	return calendar.SameMinute(calendar.StartOfDay(t), t)
}

// endsDay reports whether t sits on the last minute of its day.
func endsDay(t time.Time) bool {
	return calendar.SameMinute(calendar.EndOfDay(t), t)
}

func isFullDay(from, to time.Time) bool {
	return startsDay(from) && endsDay(to)
}
