package output

import (
	"testing"
)

func TestColorFunctionsNoColor(t *testing.T) {
	// Tests run in a non-TTY environment, so color should be disabled.
	// Verify that color functions return the input unchanged.
	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Green", Green},
		{"Red", Red},
		{"Yellow", Yellow},
		{"Cyan", Cyan},
		{"Dim", Dim},
		{"Bold", Bold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn("hello")
			if got != "hello" {
				t.Errorf("expected %q, got %q", "hello", got)
			}
		})
	}
}

func TestColorFunctionsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	got := Cyan("SAME_DAY")
	if got != "SAME_DAY" {
		t.Errorf("expected %q with NO_COLOR set, got %q", "SAME_DAY", got)
	}
}

func TestYellowf(t *testing.T) {
	got := Yellowf("unknown timezone %q", "Mars/Base")
	if got != `unknown timezone "Mars/Base"` {
		t.Errorf("Yellowf() = %q", got)
	}
}
