package daterange_test

import (
	"fmt"
	"time"

	"github.com/dslh/daterange/daterange"
)

func ExampleFormat() {
	today := time.Date(2023, time.November, 15, 12, 0, 0, 0, time.UTC)
	from := time.Date(2023, time.January, 1, 0, 11, 0, 0, time.UTC)
	to := time.Date(2023, time.January, 1, 14, 30, 0, 0, time.UTC)

	fmt.Println(daterange.Format(from, to, daterange.WithToday(today), daterange.WithLocale("en-US")))
	fmt.Println(daterange.Format(from, to, daterange.WithToday(today), daterange.WithLocale("en-GB")))
	fmt.Println(daterange.Format(from, to, daterange.WithToday(today), daterange.WithLocale("en-US"), daterange.WithIncludeTime(false)))
	// Output:
	// Jan 1, 12:11am - 2:30pm
	// Jan 1, 0:11 - 14:30
	// Sun, Jan 1
}

func ExampleClassify() {
	from := time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.June, 30, 23, 59, 59, 0, time.UTC)

	fmt.Println(daterange.Classify(from, to))
	// Output: QUARTER
}
