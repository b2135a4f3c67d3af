package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/dslh/daterange/internal/exitcode"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "daterange",
	Short: "Format date ranges as short, readable text",
	Long: `daterange renders a time interval as the shortest unambiguous text for it:
"Jan 1 - 12", "Q1 2023", "Jan 1, 12:11am - 2:30pm".

Defaults for locale, timezone, separator and time-of-day text come from
~/.config/daterange/config.yml and DATERANGE_* environment variables; flags
override both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (log formatting decisions to stderr)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json")
	registerFlagCompletion(rootCmd, "output", completeOutputFormats)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra's built-in validators (ExactArgs, MinimumNArgs, etc.) and
		// flag parsing errors return plain errors. Wrap them as usage errors
		// so they exit with code 2.
		var e *exitcode.Error
		if !errors.As(err, &e) && isCobraUsageError(err) {
			return exitcode.Usage(err.Error())
		}
	}
	return err
}

// isCobraUsageError returns true if the error looks like a Cobra argument
// validation or flag parsing error.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "arg(s)") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.HasPrefix(msg, "flag needs an argument")
}

// isInteractive reports whether the terminal is interactive (both stdin and
// stdout are TTYs). It's a variable so tests can override it.
var isInteractive = func() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		if stat.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}
	return true
}
