package daterange

import (
	"fmt"
	"strings"
)

// Shape is the kind of interval a (from, to) pair describes. Each shape has
// exactly one rendering template.
type Shape int

const (
	// Year is a whole calendar year: "2023".
	Year Shape = iota + 1
	// Quarter is a whole calendar quarter: "Q1 2023".
	Quarter
	// Month is one or more whole months: "April 2023", "Jan - Feb 2023".
	Month
	// AcrossYears spans a year boundary: "Jan 1 '22 - Jan 20 '23".
	AcrossYears
	// AcrossMonths spans a month boundary within one year: "Jan 3 - Apr 20".
	AcrossMonths
	// AcrossDays spans several days within one month: "Jan 1 - 12".
	AcrossDays
	// SameDay is part of a single day: "Jan 1, 12:11am - 2:30pm".
	SameDay
	// FullDay is exactly one whole day: "Sun, Jan 1".
	FullDay
)

var shapeNames = map[Shape]string{
	Year:         "YEAR",
	Quarter:      "QUARTER",
	Month:        "MONTH",
	AcrossYears:  "ACROSS_YEARS",
	AcrossMonths: "ACROSS_MONTHS",
	AcrossDays:   "ACROSS_DAYS",
	SameDay:      "SAME_DAY",
	FullDay:      "FULL_DAY",
}

// Shapes returns every shape in classification priority order.
func Shapes() []Shape {
	return []Shape{Year, Quarter, Month, AcrossYears, AcrossMonths, AcrossDays, SameDay, FullDay}
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// MarshalText encodes the shape as its upper-case tag.
func (s Shape) MarshalText() ([]byte, error) {
	name, ok := shapeNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown shape %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText accepts a tag in any case, with '-' or '_' between words.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseShape parses a shape tag such as "ACROSS_DAYS" or "across-days".
func ParseShape(name string) (Shape, error) {
	want := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for shape, tag := range shapeNames {
		if tag == want {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
