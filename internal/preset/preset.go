// Package preset defines named date ranges relative to a reference day.
package preset

import (
	"fmt"
	"strings"
	"time"

	"github.com/dslh/daterange/internal/calendar"
)

// Preset is a named range computed from today.
type Preset struct {
	Name        string
	Description string
	bounds      func(today time.Time) (time.Time, time.Time)
}

// Range returns the preset's inclusive bounds in today's location.
func (p Preset) Range(today time.Time) (from, to time.Time) {
	return p.bounds(today)
}

var presets = []Preset{
	{"today", "The whole of today", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfDay(t), calendar.EndOfDay(t)
	}},
	{"yesterday", "The whole of yesterday", func(t time.Time) (time.Time, time.Time) {
		y := t.AddDate(0, 0, -1)
		return calendar.StartOfDay(y), calendar.EndOfDay(y)
	}},
	{"this-week", "Monday to Sunday of the current week", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfWeek(t), calendar.EndOfWeek(t)
	}},
	{"last-7-days", "Six days ago through the end of today", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfDay(t.AddDate(0, 0, -6)), calendar.EndOfDay(t)
	}},
	{"this-month", "The current calendar month", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfMonth(t), calendar.EndOfMonth(t)
	}},
	{"last-month", "The previous calendar month", func(t time.Time) (time.Time, time.Time) {
		m := calendar.StartOfMonth(t).AddDate(0, -1, 0)
		return m, calendar.EndOfMonth(m)
	}},
	{"this-quarter", "The current calendar quarter", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfQuarter(t), calendar.EndOfQuarter(t)
	}},
	{"this-year", "The current calendar year", func(t time.Time) (time.Time, time.Time) {
		return calendar.StartOfYear(t), calendar.EndOfYear(t)
	}},
	{"last-year", "The previous calendar year", func(t time.Time) (time.Time, time.Time) {
		y := calendar.StartOfYear(t).AddDate(-1, 0, 0)
		return y, calendar.EndOfYear(y)
	}},
}

// All returns every preset in display order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Names returns the preset names in display order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by name. Matching ignores case and treats '_' and
// ' ' as '-'.
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for _, p := range presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q (valid: %s)", name, strings.Join(Names(), ", "))
}
