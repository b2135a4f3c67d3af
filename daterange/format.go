package daterange

import (
	"time"

	"github.com/dslh/daterange/internal/calendar"
	"github.com/dslh/daterange/internal/locale"
)

// nowFunc supplies the default reference instant. Tests replace it.
var nowFunc = time.Now

// Formatter renders intervals with a fixed set of options. It holds no
// mutable state and is safe for concurrent use.
type Formatter struct {
	today       time.Time
	localeID    string
	includeTime bool
	separator   string
	timezone    string

	locale   *locale.Locale
	location *time.Location

	verbose bool
	logFunc func(format string, args ...any)
}

// New creates a Formatter. Without options it uses the ambient locale, the
// current time as today, "-" as separator, and includes times of day.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		includeTime: true,
		separator:   DefaultSeparator,
	}
	for _, opt := range opts {
		opt(f)
	}

	requested := f.localeID
	if requested == "" {
		requested = locale.Ambient()
	}
	f.locale = locale.Match(requested)
	f.log("locale %q resolved to %s\n", requested, f.locale.ID())

	loc, err := calendar.LoadLocation(f.timezone)
	if err != nil {
		f.log("%v; keeping each instant's own zone\n", err)
	}
	f.location = loc

	return f
}

// Format renders from..to with the given options.
func Format(from, to time.Time, opts ...Option) string {
	return New(opts...).Format(from, to)
}

// Format renders from..to as the shortest unambiguous text for that interval.
// from must not be after to.
func (f *Formatter) Format(from, to time.Time) string {
	return f.Explain(from, to).Text
}

// Explanation records every decision made while rendering an interval.
type Explanation struct {
	Shape      Shape  `json:"shape"`
	Locale     string `json:"locale"`
	Timezone   string `json:"timezone,omitempty"`
	Separator  string `json:"separator"`
	IsToday    bool   `json:"is_today"`
	IsThisYear bool   `json:"is_this_year"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	YearSuffix string `json:"year_suffix,omitempty"`
	Text       string `json:"text"`
}

// Explain renders from..to and reports how the text was chosen.
func (f *Formatter) Explain(from, to time.Time) Explanation {
	today := f.today
	if today.IsZero() {
		today = nowFunc()
	}
	to = to.In(from.Location())
	today = today.In(from.Location())

	r := rangeText{
		from:     from,
		to:       to,
		shape:    Classify(from, to),
		sep:      f.separator,
		thisDay:  calendar.SameDay(from, today),
		thisYear: calendar.SameYear(from, today),
		locale:   f.locale,
		clock:    clock{locale: f.locale, location: f.location},
	}
	if !r.thisYear {
		r.yearSuffix = ", " + year(to)
	}
	if f.includeTime && !startsDay(from) {
		r.startTime = ", " + r.clock.render(from)
	}
	if f.includeTime && !endsDay(to) {
		r.endTime = ", " + r.clock.render(to)
	}
	f.log("classified %s .. %s as %s\n", from.Format(time.RFC3339), to.Format(time.RFC3339), r.shape)
	f.log("start time %q, end time %q, year suffix %q\n", r.startTime, r.endTime, r.yearSuffix)

	e := Explanation{
		Shape:      r.shape,
		Locale:     f.locale.ID(),
		Separator:  f.separator,
		IsToday:    r.thisDay,
		IsThisYear: r.thisYear,
		StartTime:  r.startTime,
		EndTime:    r.endTime,
		YearSuffix: r.yearSuffix,
		Text:       r.render(),
	}
	if f.location != nil {
		e.Timezone = f.location.String()
	}
	return e
}

func (f *Formatter) log(format string, args ...any) {
	if f.verbose && f.logFunc != nil {
		f.logFunc(format, args...)
	}
}
