package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

// explainedRange is the JSON shape of explain output.
type explainedRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	daterange.Explanation
}

var explainCmd = &cobra.Command{
	Use:   "explain <from> <to>",
	Short: "Show how a date range is formatted",
	Long: `Format a date range and show each decision behind the text: the shape,
the locale that was matched, whether the year and date could be omitted, and
the time-of-day suffixes.`,
	Example: `  daterange explain "2021-03-03 09:30" "2021-03-03 17:00" --today 2023-11-15`,
	Args:    cobra.ExactArgs(2),
	RunE:    runExplain,
}

func init() {
	addFormatFlags(explainCmd)
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	from, to, err := s.parseRange(args[0], args[1])
	if err != nil {
		return err
	}

	e := s.formatter().Explain(from, to)
	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, explainedRange{From: from, To: to, Explanation: e})
	}

	timezone := e.Timezone
	if timezone == "" {
		timezone = output.Dim("as given")
	}

	d := output.NewDetailWriter(w, "RANGE", e.Text)
	d.Fields([]output.KeyValue{
		output.KV("From", output.FormatInstant(from)),
		output.KV("To", output.FormatInstant(to.In(from.Location()))),
		output.KV("Shape", output.Cyan(e.Shape.String())),
	})

	d.Section("SETTINGS")
	d.Fields([]output.KeyValue{
		output.KV("Locale", e.Locale),
		output.KV("Timezone", timezone),
		output.KV("Separator", strconv.Quote(e.Separator)),
	})

	d.Section("DECISIONS")
	d.Fields([]output.KeyValue{
		output.KV("Today", yesNo(e.IsToday)),
		output.KV("This year", yesNo(e.IsThisYear)),
		output.KV("Start time", orNone(e.StartTime)),
		output.KV("End time", orNone(e.EndTime)),
		output.KV("Year suffix", orNone(e.YearSuffix)),
	})
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// orNone shows a suffix without its leading ", ".
func orNone(suffix string) string {
	if suffix == "" {
		return output.Dim("none")
	}
	return strings.TrimPrefix(suffix, ", ")
}
