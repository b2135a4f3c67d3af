// Package batch formats lists of ranges read from YAML.
//
// A batch file is a sequence of entries:
//
//	- label: sprint 42
//	  from: 2023-01-01
//	  to: 2023-01-12
//	- from: 2023-01-01T00:11:00Z
//	  to: 2023-01-01T14:30:00Z
//	  separator: "–"
//	  include_time: false
//
// Per-entry separator and include_time override the caller's options.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/calendar"
	"gopkg.in/yaml.v3"
)

// Entry is one range in a batch file. From and To are kept as written and
// parsed by Resolve.
type Entry struct {
	Label       string  `yaml:"label"`
	From        string  `yaml:"from"`
	To          string  `yaml:"to"`
	Separator   *string `yaml:"separator"`
	IncludeTime *bool   `yaml:"include_time"`
}

// Result is a formatted entry.
type Result struct {
	Label string          `json:"label,omitempty"`
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Shape daterange.Shape `json:"shape"`
	Text  string          `json:"text"`
}

// ErrInverted is returned when an entry's from is after its to.
var ErrInverted = errors.New("from is after to")

// Read decodes a batch document. An empty document is an empty batch.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing batch: %w", err)
	}
	return entries, nil
}

// Load reads a batch file from path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Resolve parses the entry's bounds, reading zone-less values in loc. A
// date-only to covers the whole of that day.
func (e Entry) Resolve(loc *time.Location) (from, to time.Time, err error) {
	from, err = calendar.ParseInstant(e.From, loc, false)
	if err != nil {
		return from, to, fmt.Errorf("from: %w", err)
	}
	to, err = calendar.ParseInstant(e.To, loc, true)
	if err != nil {
		return from, to, fmt.Errorf("to: %w", err)
	}
	if from.After(to) {
		return from, to, ErrInverted
	}
	return from, to, nil
}

// Options returns base extended with the entry's overrides.
func (e Entry) Options(base []daterange.Option) []daterange.Option {
	opts := append([]daterange.Option(nil), base...)
	if e.Separator != nil {
		opts = append(opts, daterange.WithSeparator(*e.Separator))
	}
	if e.IncludeTime != nil {
		opts = append(opts, daterange.WithIncludeTime(*e.IncludeTime))
	}
	return opts
}

// Format resolves and renders every entry. It stops at the first entry that
// cannot be resolved, reporting its 1-based position.
func Format(entries []Entry, loc *time.Location, base ...daterange.Option) ([]Result, error) {
	shared := daterange.New(base...)
	results := make([]Result, 0, len(entries))
	for i, e := range entries {
		from, to, err := e.Resolve(loc)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}

		f := shared
		if e.Separator != nil || e.IncludeTime != nil {
			f = daterange.New(e.Options(base)...)
		}
		x := f.Explain(from, to)
		results = append(results, Result{
			Label: e.Label,
			From:  from,
			To:    to,
			Shape: x.Shape,
			Text:  x.Text,
		})
	}
	return results, nil
}
