package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/calendar"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

// shapeInfo is the JSON shape of shapes output.
type shapeInfo struct {
	Shape       daterange.Shape `json:"shape"`
	Description string          `json:"description"`
	Example     string          `json:"example"`
}

var shapeDescriptions = map[daterange.Shape]string{
	daterange.Year:         "Starts on the first minute of a year and ends on the last minute of a year",
	daterange.Quarter:      "Covers exactly one calendar quarter",
	daterange.Month:        "Starts on the first minute of a month and ends on the last minute of a month",
	daterange.AcrossYears:  "Ends in a later year",
	daterange.AcrossMonths: "Ends in a later month of the same year",
	daterange.AcrossDays:   "Ends on a later day of the same month",
	daterange.SameDay:      "Starts and ends on the same day, with a time of day at one end",
	daterange.FullDay:      "Covers exactly one whole day",
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Describe the range shapes with examples",
	Long: `Describe each range shape in the order they are checked, with an example
rendered using the current settings. The first shape that matches wins.`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	addFormatFlags(shapesCmd)
	rootCmd.AddCommand(shapesCmd)
}

// shapeExample returns a range of the given shape in today's year.
func shapeExample(shape daterange.Shape, today time.Time) (time.Time, time.Time) {
	y, loc := today.Year(), today.Location()
	day := func(m time.Month, d, hour, minute int) time.Time {
		return time.Date(y, m, d, hour, minute, 0, 0, loc)
	}
	switch shape {
	case daterange.Year:
		return calendar.StartOfYear(today), calendar.EndOfYear(today)
	case daterange.Quarter:
		return calendar.StartOfQuarter(today), calendar.EndOfQuarter(today)
	case daterange.Month:
		return calendar.StartOfMonth(today), calendar.EndOfMonth(today)
	case daterange.AcrossYears:
		return day(time.January, 1, 0, 0).AddDate(0, 0, -2), calendar.EndOfDay(day(time.January, 2, 0, 0))
	case daterange.AcrossMonths:
		return day(time.January, 3, 0, 0), calendar.EndOfDay(day(time.April, 20, 0, 0))
	case daterange.AcrossDays:
		return day(time.January, 1, 0, 0), calendar.EndOfDay(day(time.January, 12, 0, 0))
	case daterange.SameDay:
		return day(time.January, 1, 0, 11), day(time.January, 1, 14, 30)
	default:
		return day(time.January, 1, 0, 0), calendar.EndOfDay(day(time.January, 1, 0, 0))
	}
}

func runShapes(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	today := s.today()
	s.options.Today = today
	f := s.formatter()

	var infos []shapeInfo
	for _, shape := range daterange.Shapes() {
		from, to := shapeExample(shape, today)
		infos = append(infos, shapeInfo{
			Shape:       shape,
			Description: shapeDescriptions[shape],
			Example:     f.Format(from, to),
		})
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, infos)
	}
	return output.RenderMarkdown(w, shapesMarkdown(infos), 0)
}

func shapesMarkdown(infos []shapeInfo) string {
	var b strings.Builder
	b.WriteString("# Range shapes\n\n")
	b.WriteString("Shapes are checked in this order and the first match wins.\n\n")
	b.WriteString("| Shape | Matches | Example |\n")
	b.WriteString("|---|---|---|\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", info.Shape, info.Description, info.Example)
	}
	return b.String()
}
