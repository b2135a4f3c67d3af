package daterange

import "time"

// DefaultSeparator sits between the two halves of a range.
const DefaultSeparator = "-"

// Options is the plain-struct form of the formatter settings, convenient for
// callers that load settings from config. Zero fields mean "use the default",
// except IncludeTime which is taken as given; start from DefaultOptions.
type Options struct {
	// Today is the reference instant that decides whether the year or the
	// date can be omitted. Zero means the current time at each call.
	Today time.Time
	// Locale is a BCP 47 or POSIX locale identifier. Empty means the ambient
	// locale from the environment.
	Locale string
	// IncludeTime enables time-of-day text for endpoints that are not on a
	// day boundary.
	IncludeTime bool
	// Separator sits between the two halves of a range. Empty means "-".
	Separator string
	// Timezone is an IANA zone used only for clock text. Empty keeps each
	// instant's own zone.
	Timezone string
}

// DefaultOptions returns the settings used when no options are given.
func DefaultOptions() Options {
	return Options{IncludeTime: true, Separator: DefaultSeparator}
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithOptions applies every field of o.
func WithOptions(o Options) Option {
	return func(f *Formatter) {
		f.today = o.Today
		f.localeID = o.Locale
		f.includeTime = o.IncludeTime
		f.separator = o.Separator
		if f.separator == "" {
			f.separator = DefaultSeparator
		}
		f.timezone = o.Timezone
	}
}

// WithToday pins the reference instant. Useful for tests and for rendering
// ranges relative to a date other than now.
func WithToday(today time.Time) Option {
	return func(f *Formatter) { f.today = today }
}

// WithLocale sets the locale identifier.
func WithLocale(id string) Option {
	return func(f *Formatter) { f.localeID = id }
}

// WithIncludeTime controls whether time-of-day text may appear.
func WithIncludeTime(include bool) Option {
	return func(f *Formatter) { f.includeTime = include }
}

// WithSeparator sets the text placed between the two halves of a range.
func WithSeparator(sep string) Option {
	return func(f *Formatter) { f.separator = sep }
}

// WithTimezone sets the IANA zone used for clock text. Calendar boundaries are
// unaffected. An unknown zone is ignored.
func WithTimezone(name string) Option {
	return func(f *Formatter) { f.timezone = name }
}

// WithVerbose traces formatting decisions through logFunc.
func WithVerbose(logFunc func(format string, args ...any)) Option {
	return func(f *Formatter) {
		f.verbose = true
		f.logFunc = logFunc
	}
}
