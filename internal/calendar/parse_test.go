package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		endOfDay  bool
		want      time.Time
		wantError bool
	}{
		{"rfc3339", "2023-01-01T00:11:00Z", false, time.Date(2023, 1, 1, 0, 11, 0, 0, time.UTC), false},
		{"rfc3339 nano", "2023-01-12T23:59:59.999Z", false, time.Date(2023, 1, 12, 23, 59, 59, 999000000, time.UTC), false},
		{"offset without seconds", "2023-01-01T09:30+00:00", false, time.Date(2023, 1, 1, 9, 30, 0, 0, time.UTC), false},
		{"wall clock", "2023-01-01T14:30", false, time.Date(2023, 1, 1, 14, 30, 0, 0, time.UTC), false},
		{"wall clock with space", "2023-01-01 14:30", false, time.Date(2023, 1, 1, 14, 30, 0, 0, time.UTC), false},
		{"date start", "2023-01-12", false, time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), false},
		{"date end", "2023-01-12", true, time.Date(2023, 1, 12, 23, 59, 59, 999999999, time.UTC), false},
		{"surrounding space", "  2023-01-12 ", false, time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", false, time.Time{}, true},
		{"garbage", "next tuesday", false, time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input, time.UTC, tt.endOfDay)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ParseInstant(%q) expected error, got %s", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %s, want %s", tt.input, got.Format(time.RFC3339Nano), tt.want.Format(time.RFC3339Nano))
			}
		})
	}
}

func TestParseInstantUsesLocation(t *testing.T) {
	plus2 := time.FixedZone("EET", 2*60*60)
	got, err := ParseInstant("2023-06-01 08:00", plus2, false)
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != plus2 {
		t.Errorf("location = %s, want EET", got.Location())
	}
	if got.UTC().Hour() != 6 {
		t.Errorf("UTC hour = %d, want 6", got.UTC().Hour())
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != nil {
		t.Errorf("LoadLocation(\"\") = %v, %v; want nil, nil", loc, err)
	}

	loc, err = LoadLocation("UTC")
	if err != nil || loc != time.UTC {
		t.Errorf("LoadLocation(UTC) = %v, %v; want UTC", loc, err)
	}

	_, err = LoadLocation("Mars/Olympus_Mons")
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}
	if !strings.Contains(err.Error(), "Mars/Olympus_Mons") {
		t.Errorf("error = %q, want it to name the timezone", err.Error())
	}
}
