package daterange

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want Shape
	}{
		{"full year", "2023-01-01T00:00:00Z", "2023-12-31T23:59:59.999Z", Year},
		{"full quarter", "2023-04-01T00:00:00Z", "2023-06-30T23:59:59.999Z", Quarter},
		{"full month", "2023-04-01T00:00:00Z", "2023-04-30T23:59:59.999Z", Month},
		{"two full months", "2023-01-01T00:00:00Z", "2023-02-28T23:59:59.999Z", Month},
		{"months across quarters", "2023-02-01T00:00:00Z", "2023-04-30T23:59:59.999Z", Month},
		{"across years", "2022-12-30T00:00:00Z", "2023-01-02T23:59:59.999Z", AcrossYears},
		{"across months", "2023-01-03T00:00:00Z", "2023-04-20T23:59:59.999Z", AcrossMonths},
		{"across days", "2023-01-01T00:00:00Z", "2023-01-12T23:59:59.999Z", AcrossDays},
		{"full day", "2023-01-01T00:00:00Z", "2023-01-01T23:59:59.999Z", FullDay},
		{"full day seconds ignored", "2023-01-05T00:00:59Z", "2023-01-05T23:59:00Z", FullDay},
		{"partial day", "2023-01-01T00:11:00Z", "2023-01-01T14:30:59.999Z", SameDay},
		{"instant", "2023-06-01T10:00:00Z", "2023-06-01T10:00:00Z", SameDay},
		{"year one minute short", "2023-01-01T00:00:00Z", "2023-12-31T23:58:00Z", AcrossMonths},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(at(tt.from), at(tt.to)); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// A full year is also a full run of months and starts and ends a quarter.
	if got := Classify(at("2023-01-01T00:00:00Z"), at("2023-12-31T23:59:59.999Z")); got != Year {
		t.Errorf("full year classified as %s, want YEAR", got)
	}
	// A full quarter is also a run of full months.
	if got := Classify(at("2023-07-01T00:00:00Z"), at("2023-09-30T23:59:59.999Z")); got != Quarter {
		t.Errorf("full quarter classified as %s, want QUARTER", got)
	}
	// Start of Q1 to end of Q2 is two quarters, so it is a month run.
	if got := Classify(at("2023-01-01T00:00:00Z"), at("2023-06-30T23:59:59.999Z")); got != Month {
		t.Errorf("half year classified as %s, want MONTH", got)
	}
}

func TestClassifyIgnoresOptions(t *testing.T) {
	from := at("2023-01-01T00:11:00Z")
	to := at("2023-01-01T14:30:00Z")
	for _, opts := range [][]Option{nil, {WithIncludeTime(false)}, {WithTimezone("UTC")}} {
		if e := New(opts...).Explain(from, to); e.Shape != SameDay {
			t.Errorf("Explain().Shape = %s, want SAME_DAY", e.Shape)
		}
	}
}
