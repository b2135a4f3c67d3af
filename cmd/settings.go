package cmd

import (
	"fmt"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/calendar"
	"github.com/dslh/daterange/internal/config"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/spf13/cobra"
)

// Formatting flags shared by every command that renders ranges.
var (
	todayFlag     string
	localeFlag    string
	timezoneFlag  string
	separatorFlag string
	noTimeFlag    bool
)

// nowFunc supplies the current time. Tests replace it.
var nowFunc = time.Now

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&todayFlag, "today", "", "Reference date that decides when the year or date is omitted (default now)")
	cmd.Flags().StringVar(&localeFlag, "locale", "", "Locale for names and clock style, e.g. en-GB or de_DE.UTF-8")
	cmd.Flags().StringVar(&timezoneFlag, "timezone", "", "IANA timezone for clock text and zone-less input")
	cmd.Flags().StringVar(&separatorFlag, "separator", "", "Text between the two halves of a range")
	cmd.Flags().BoolVar(&noTimeFlag, "no-time", false, "Never show times of day")

	registerFlagCompletion(cmd, "locale", completeLocales)
	registerFlagCompletion(cmd, "timezone", completeTimezones)
}

// settings is the resolved formatting configuration for one invocation.
type settings struct {
	options  daterange.Options
	location *time.Location
	verbose  func(format string, args ...any)
}

// loadSettings merges config, environment and flags. Flags win.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, exitcode.General("loading config", err)
	}

	o := daterange.Options{
		Locale:      cfg.Locale,
		Timezone:    cfg.Timezone,
		Separator:   cfg.Separator,
		IncludeTime: cfg.IncludeTime,
	}
	flags := cmd.Flags()
	if flags.Changed("locale") {
		o.Locale = localeFlag
	}
	if flags.Changed("timezone") {
		o.Timezone = timezoneFlag
	}
	if flags.Changed("separator") {
		o.Separator = separatorFlag
	}
	if noTimeFlag {
		o.IncludeTime = false
	}

	s := &settings{options: o}
	s.location, err = calendar.LoadLocation(o.Timezone)
	if err != nil {
		return nil, exitcode.Usage(err.Error())
	}

	if todayFlag != "" {
		s.options.Today, err = calendar.ParseInstant(todayFlag, s.location, false)
		if err != nil {
			return nil, exitcode.Usagef("invalid --today: %v", err)
		}
	}

	if verbose {
		s.verbose = func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
		}
	}
	return s, nil
}

// formatOptions returns the daterange options for these settings.
func (s *settings) formatOptions() []daterange.Option {
	opts := []daterange.Option{daterange.WithOptions(s.options)}
	if s.verbose != nil {
		opts = append(opts, daterange.WithVerbose(s.verbose))
	}
	return opts
}

func (s *settings) formatter() *daterange.Formatter {
	return daterange.New(s.formatOptions()...)
}

// today returns the reference instant, falling back to now.
func (s *settings) today() time.Time {
	t := s.options.Today
	if t.IsZero() {
		t = nowFunc()
	}
	if s.location != nil {
		t = t.In(s.location)
	}
	return t
}

// parseLocation is where zone-less input is read.
func (s *settings) parseLocation() *time.Location {
	if s.location != nil {
		return s.location
	}
	return time.Local
}

// parseRange reads a pair of positional instants. A date-only end covers the
// whole of that day.
func (s *settings) parseRange(fromArg, toArg string) (time.Time, time.Time, error) {
	from, err := calendar.ParseInstant(fromArg, s.parseLocation(), false)
	if err != nil {
		return from, time.Time{}, exitcode.Usagef("invalid start: %v", err)
	}
	to, err := calendar.ParseInstant(toArg, s.parseLocation(), true)
	if err != nil {
		return from, to, exitcode.Usagef("invalid end: %v", err)
	}
	if from.After(to) {
		return from, to, exitcode.Usagef("start %s is after end %s", fromArg, toArg)
	}
	return from, to, nil
}
