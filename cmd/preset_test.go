package cmd

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dslh/daterange/internal/exitcode"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"today", "Wed, Nov 15"},
		{"yesterday", "Tue, Nov 14"},
		{"this-week", "Nov 13 - 19"},
		{"last-7-days", "Nov 9 - 15"},
		{"this-month", "November 2023"},
		{"last-month", "October 2023"},
		{"this-quarter", "Q4 2023"},
		{"this-year", "2023"},
		{"last-year", "2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)

			out, err := execute(t, withPinned("preset", tt.name)...)
			if err != nil {
				t.Fatalf("preset returned error: %v", err)
			}
			if out != tt.want+"\n" {
				t.Errorf("output = %q, want %q", out, tt.want+"\n")
			}
		})
	}
}

func TestPresetList(t *testing.T) {
	setupCommandTest(t)

	out, err := execute(t, withPinned("preset")...)
	if err != nil {
		t.Fatalf("preset returned error: %v", err)
	}
	for _, want := range []string{"PRESET", "this-quarter", "2023-10-01", "2023-12-31", "Q4 2023", "Total: 9 presets"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestPresetJSON(t *testing.T) {
	setupCommandTest(t)

	out, err := execute(t, withPinned("preset", "last-month", "-o", "json")...)
	if err != nil {
		t.Fatal(err)
	}
	var got presetRange
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Name != "last-month" || got.Text != "October 2023" || got.Shape.String() != "MONTH" {
		t.Errorf("got %+v", got)
	}
	if !got.From.Equal(time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", got.From)
	}
}

func TestPresetUsesNowByDefault(t *testing.T) {
	setupCommandTest(t)
	origNow := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = origNow }()

	out, err := execute(t, "preset", "last-month", "--locale", "en-US", "--timezone", "UTC")
	if err != nil {
		t.Fatal(err)
	}
	if out != "January 2024\n" {
		t.Errorf("output = %q, want %q", out, "January 2024\n")
	}
}

func TestPresetUnknown(t *testing.T) {
	setupCommandTest(t)

	_, err := execute(t, withPinned("preset", "fortnight")...)
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if exitcode.ExitCode(err) != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d", exitcode.ExitCode(err), exitcode.UsageError)
	}
	if !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("error = %v", err)
	}
}
