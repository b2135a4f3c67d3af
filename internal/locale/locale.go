// Package locale resolves locale identifiers to the month names, weekday names
// and clock conventions used when rendering a date range.
//
// Identifiers may be BCP 47 tags ("en-GB") or POSIX locale names
// ("en_GB.UTF-8"). Resolution goes through a golang.org/x/text/language
// matcher, so a region the tables do not carry falls back to the closest
// supported variant of its language, and an unknown language falls back to
// en-US.
package locale

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultID is used when nothing else matches.
const DefaultID = "en-US"

// Locale holds the text a range renderer needs for one locale.
type Locale struct {
	id            string
	tag           language.Tag
	months        [12]string
	shortMonths   [12]string
	shortWeekdays [7]string
	hour12        bool
	am, pm        string
}

// ID returns the canonical identifier of the matched locale (e.g. "en-GB").
func (l *Locale) ID() string { return l.id }

// Tag returns the BCP 47 tag of the matched locale.
func (l *Locale) Tag() language.Tag { return l.tag }

// Hour12 reports whether the locale renders clock time with an AM/PM marker.
func (l *Locale) Hour12() bool { return l.hour12 }

// Markers returns the AM and PM markers, or empty strings for 24-hour locales.
func (l *Locale) Markers() (am, pm string) { return l.am, l.pm }

// Month returns the full standalone month name of t ("January").
func (l *Locale) Month(t time.Time) string {
	return l.months[t.Month()-1]
}

// ShortMonth returns the abbreviated month name of t ("Jan").
func (l *Locale) ShortMonth(t time.Time) string {
	return l.shortMonths[t.Month()-1]
}

// ShortWeekday returns the abbreviated weekday name of t ("Sun").
func (l *Locale) ShortWeekday(t time.Time) string {
	return l.shortWeekdays[t.Weekday()]
}

// Clock renders the time of day of t with a two-digit hour and minute, the
// way the locale writes it: "02:30 PM" for en-US, "14:30" for en-GB.
// t is rendered in its own location.
func (l *Locale) Clock(t time.Time) string {
	if !l.hour12 {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	marker := l.am
	if t.Hour() >= 12 {
		marker = l.pm
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), marker)
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(table))
	for i, l := range table {
		tags[i] = l.tag
	}
	return tags
}

// Default returns the en-US locale.
func Default() *Locale {
	return table[0]
}

// Supported returns the identifiers of every locale with its own table.
func Supported() []string {
	ids := make([]string, len(table))
	for i, l := range table {
		ids[i] = l.id
	}
	return ids
}

// Match resolves id to the closest supported locale. An identifier that does
// not parse is retried with its primary language subtag alone; anything still
// unmatched resolves to the default locale.
func Match(id string) *Locale {
	id = Normalize(id)
	if id == "" {
		return Default()
	}

	tag, err := language.Parse(id)
	if err != nil {
		primary, _, _ := strings.Cut(id, "-")
		if tag, err = language.Parse(primary); err != nil {
			return Default()
		}
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return table[index]
}

// Normalize converts a POSIX locale name such as "en_GB.UTF-8@euro" to a BCP 47
// shaped identifier ("en-GB"). The C and POSIX locales normalise to "".
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	if id == "C" || id == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(id, "_", "-")
}

// Ambient returns the caller's locale from the environment, consulting
// LC_ALL, LC_TIME and LANG in that order, or DefaultID when none is usable.
func Ambient() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if id := Normalize(os.Getenv(key)); id != "" {
			return id
		}
	}
	return DefaultID
}
