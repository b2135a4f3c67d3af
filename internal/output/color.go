// Package output provides structured formatting for CLI output.
//
// It covers the daterange rendering conventions: detail views for a single
// range, list views for batches and presets, instant formatting, markdown
// rendering, and JSON output mode. All output respects the NO_COLOR
// environment variable and suppresses color when stdout is not a TTY.
package output

import (
	"fmt"
	"os"
)

// Color codes for ANSI escape sequences.
const (
	reset = "\033[0m"

	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	dim    = "\033[2m"
	bold   = "\033[1m"
)

// colorEnabled reports whether color output is permitted.
// It returns false when NO_COLOR is set or stdout is not a TTY.
func colorEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// wrap returns s wrapped in the given ANSI code, or s unchanged if color is disabled.
func wrap(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return code + s + reset
}

// Green formats s in green (saved settings).
func Green(s string) string { return wrap(green, s) }

// Red formats s in red (rows that failed to parse).
func Red(s string) string { return wrap(red, s) }

// Yellow formats s in yellow (warnings).
func Yellow(s string) string { return wrap(yellow, s) }

// Cyan formats s in cyan (shape tags).
func Cyan(s string) string { return wrap(cyan, s) }

// Dim formats s in dim/gray (secondary information).
func Dim(s string) string { return wrap(dim, s) }

// Bold formats s in bold (titles, section headers).
func Bold(s string) string { return wrap(bold, s) }

// Yellowf formats and colors in yellow.
func Yellowf(format string, args ...any) string { return Yellow(fmt.Sprintf(format, args...)) }
