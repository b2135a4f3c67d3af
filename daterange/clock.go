package daterange

import (
	"strings"
	"time"

	"github.com/dslh/daterange/internal/calendar"
	"github.com/dslh/daterange/internal/locale"
)

// clock renders short times of day for one locale and zone.
type clock struct {
	locale   *locale.Locale
	location *time.Location // nil keeps the instant's own zone
}

// render returns the shortened clock text for t: "12:11am", "2pm", "0:11",
// "14:00".
func (c clock) render(t time.Time) string {
	if c.location != nil {
		t = t.In(c.location)
	}
	text := shortenMarkers(c.locale.Clock(t), c.locale)
	// Whole hours drop their minutes in 12-hour text only.
	if strings.Contains(text, "m") {
		text = strings.ReplaceAll(text, ":00", "")
	}
	return strings.TrimPrefix(text, "0")
}

// shortenMarkers folds " AM" and " PM" into a trailing "am"/"pm".
func shortenMarkers(text string, l *locale.Locale) string {
	am, pm := l.Markers()
	if am != "" {
		text = strings.ReplaceAll(text, " "+am, "am")
	}
	if pm != "" {
		text = strings.ReplaceAll(text, " "+pm, "pm")
	}
	return text
}

// FormatTime renders the time of day of t the way ranges show it, in the given
// locale and IANA timezone. Empty arguments mean the ambient locale and t's
// own zone; an unknown timezone is ignored.
func FormatTime(t time.Time, localeID, timezone string) string {
	if localeID == "" {
		localeID = locale.Ambient()
	}
	loc, err := calendar.LoadLocation(timezone)
	if err != nil {
		loc = nil
	}
	return clock{locale: locale.Match(localeID), location: loc}.render(t)
}
