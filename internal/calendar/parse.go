package calendar

import (
	"fmt"
	"strings"
	"time"
)

// LoadLocation resolves an IANA timezone identifier. An empty name yields nil,
// meaning "keep the instant's own zone".
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "":
		return nil, nil
	case "UTC", "utc", "Z":
		return time.UTC, nil
	case "Local", "local":
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// Layouts with an explicit offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// Layouts read in the caller's default location.
var wallLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// ParseInstant parses s as an instant. Zone-less input is read in loc (time.Local
// when nil). A bare date resolves to the start of that day, or to its last
// nanosecond when endOfDay is set, so "2023-01-12" can close a range.
func ParseInstant(s string, loc *time.Location, endOfDay bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range wallLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		if endOfDay {
			return EndOfDay(t), nil
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (want RFC 3339, YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}
