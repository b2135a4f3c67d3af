package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dslh/daterange/internal/exitcode"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupCommandTest isolates a command test from the user's config, the
// environment, and flag state left by earlier tests.
func setupCommandTest(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	for _, env := range []string{"DATERANGE_LOCALE", "DATERANGE_TIMEZONE", "DATERANGE_SEPARATOR", "DATERANGE_INCLUDE_TIME"} {
		t.Setenv(env, "")
	}
	resetFlags()
	rootCmd.SetIn(nil)
	rootCmd.SetErr(new(bytes.Buffer))
}

// resetFlags clears flag values and their Changed marks, which persist
// between executions of the shared command tree.
func resetFlags() {
	todayFlag = ""
	localeFlag = ""
	timezoneFlag = ""
	separatorFlag = ""
	noTimeFlag = false
	presetInteractive = false
	verbose = false
	outputFormat = ""
	for _, c := range []*cobra.Command{rootCmd, formatCmd, classifyCmd, explainCmd, batchCmd, presetCmd, shapesCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(args)
	err := Execute()
	return buf.String(), err
}

// pinned are the flags that make output independent of the host.
var pinned = []string{"--today", "2023-11-15 12:00", "--locale", "en-US", "--timezone", "UTC"}

func withPinned(args ...string) []string {
	return append(args, pinned...)
}

func TestRootHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("root --help returned error: %v", err)
	}

	out := buf.String()
	if out == "" {
		t.Fatal("root --help produced no output")
	}
	if !strings.Contains(out, "daterange") {
		t.Errorf("help output should mention daterange, got: %s", out)
	}
	for _, want := range []string{"--verbose", "--output", "format", "preset", "batch"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output should mention %s", want)
		}
	}
}

func TestVersionSubcommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "daterange version") {
		t.Errorf("version output should contain 'daterange version', got: %s", out)
	}
	if !strings.Contains(out, "commit:") {
		t.Errorf("version output should contain 'commit:', got: %s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	setupCommandTest(t)

	_, err := execute(t, "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if exitcode.ExitCode(err) != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d", exitcode.ExitCode(err), exitcode.UsageError)
	}
}

func TestWrongArgCountIsUsageError(t *testing.T) {
	setupCommandTest(t)

	_, err := execute(t, "format", "2023-01-01")
	if err == nil {
		t.Fatal("expected error for missing argument")
	}
	if exitcode.ExitCode(err) != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d", exitcode.ExitCode(err), exitcode.UsageError)
	}
}
