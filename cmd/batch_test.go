package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dslh/daterange/internal/batch"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/dslh/daterange/internal/testutil"
)

func TestBatchFile(t *testing.T) {
	setupCommandTest(t)

	out, err := execute(t, withPinned("batch", testutil.FixturePath("ranges.yml"))...)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, want := range []string{"LABEL", "FROM", "TO", "SHAPE", "TEXT"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header should contain %s, got: %s", want, lines[0])
		}
	}
	for _, want := range []string{
		"sprint 42",
		"2023-01-01 00:00 UTC",
		"2023-01-12 23:59:59 UTC",
		"ACROSS_DAYS",
		"Jan 1 - 12",
		"Jan 1, 12:11am - 2:30pm",
		"Sun, Jan 1",
		"Jan 3 to Apr 20",
		"YEAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if lines[len(lines)-1] != "Total: 5 ranges" {
		t.Errorf("footer = %q", lines[len(lines)-1])
	}
}

func TestBatchStdinJSON(t *testing.T) {
	setupCommandTest(t)
	rootCmd.SetIn(strings.NewReader(`
- from: 2023-04-01
  to: 2023-04-30
- from: 2023-01-01 00:11
  to: 2023-01-01 14:30
  separator: "–"
`))

	out, err := execute(t, withPinned("batch", "-", "-o", "json")...)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}

	var results []batch.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Text != "April 2023" {
		t.Errorf("first text = %q", results[0].Text)
	}
	if results[1].Text != "Jan 1, 12:11am – 2:30pm" {
		t.Errorf("second text = %q", results[1].Text)
	}
}

func TestBatchEmpty(t *testing.T) {
	setupCommandTest(t)
	rootCmd.SetIn(strings.NewReader(""))

	out, err := execute(t, withPinned("batch", "-")...)
	if err != nil {
		t.Fatal(err)
	}
	if out != "No ranges found.\n" {
		t.Errorf("output = %q", out)
	}
}

func TestBatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		stdin   string
		wantMsg string
	}{
		{"missing file", "/nonexistent/ranges.yml", "", "reading ranges"},
		{"malformed", "-", "- from: [", "reading ranges"},
		{"inverted", "-", "- {from: 2023-02-01, to: 2023-01-01}", "entry 1: from is after to"},
		{"bad date", "-", "- {from: 2023-01-01, to: soon}", "entry 1: to:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)
			rootCmd.SetIn(strings.NewReader(tt.stdin))

			_, err := execute(t, withPinned("batch", tt.arg)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if exitcode.ExitCode(err) != exitcode.InputError {
				t.Errorf("exit code = %d, want %d", exitcode.ExitCode(err), exitcode.InputError)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}
