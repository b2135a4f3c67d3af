package daterange

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dslh/daterange/internal/calendar"
	"github.com/dslh/daterange/internal/locale"
)

// rangeText carries the precomputed pieces shared by every template.
type rangeText struct {
	from, to time.Time
	shape    Shape
	sep      string

	thisDay  bool
	thisYear bool

	startTime  string // ", <time>" or empty
	endTime    string // ", <time>" or empty
	yearSuffix string // ", <year>" or empty

	locale *locale.Locale
	clock  clock
}

func (r rangeText) render() string {
	switch r.shape {
	case Year:
		return year(r.from)
	case Quarter:
		return fmt.Sprintf("Q%d %s", calendar.Quarter(r.from), year(r.from))
	case Month:
		return r.month()
	case AcrossYears:
		// Jan 1 '22, 9am - Feb 12 '23
		return r.monthDay(r.from) + " " + shortYear(r.from) + r.startTime + r.between() +
			r.monthDay(r.to) + " " + shortYear(r.to) + r.endTime
	case AcrossMonths:
		// Jan 1 - Feb 12, 2022
		return r.monthDay(r.from) + r.startTime + r.between() + r.monthDay(r.to) + r.endTime + r.yearSuffix
	case AcrossDays:
		return r.acrossDays()
	case SameDay, FullDay:
		return r.sameDay()
	}
	return ""
}

func (r rangeText) month() string {
	if calendar.SameMonth(r.from, r.to) {
		// April 2023
		return r.locale.Month(r.from) + " " + year(r.from)
	}
	// Jan - Feb 2023
	return r.locale.ShortMonth(r.from) + r.between() + r.locale.ShortMonth(r.to) + " " + year(r.to)
}

func (r rangeText) acrossDays() string {
	if r.hasTime() {
		// A bare day number next to a time would be ambiguous, so the month
		// repeats: Jan 1, 12:11am - Jan 2, 2:30pm
		return r.monthDay(r.from) + r.startTime + r.between() + r.monthDay(r.to) + r.endTime + r.yearSuffix
	}
	// Jan 1 - 12
	return r.monthDay(r.from) + r.between() + strconv.Itoa(r.to.Day()) + r.yearSuffix
}

func (r rangeText) sameDay() string {
	if !r.hasTime() {
		// Sun, Jan 1
		return r.locale.ShortWeekday(r.from) + ", " + r.monthDay(r.from) + r.yearSuffix
	}
	if r.thisDay {
		// 12pm - 1pm
		return r.clock.render(r.from) + r.between() + r.clock.render(r.to)
	}
	// Jan 1, 12pm - 1pm
	return r.monthDay(r.from) + r.startTime + r.between() + r.clock.render(r.to) + r.yearSuffix
}

func (r rangeText) hasTime() bool {
	return r.startTime != "" || r.endTime != ""
}

func (r rangeText) between() string {
	return " " + r.sep + " "
}

func (r rangeText) monthDay(t time.Time) string {
	return r.locale.ShortMonth(t) + " " + strconv.Itoa(t.Day())
}

func year(t time.Time) string {
	return strconv.Itoa(t.Year())
}

// shortYear renders the year as an apostrophe and two digits: '23.
func shortYear(t time.Time) string {
	return fmt.Sprintf("'%02d", t.Year()%100)
}
