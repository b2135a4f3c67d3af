package cmd

import (
	"fmt"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

// formattedRange is the JSON shape of format and classify output.
type formattedRange struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Shape daterange.Shape `json:"shape"`
	Text  string          `json:"text,omitempty"`
}

var formatCmd = &cobra.Command{
	Use:   "format <from> <to>",
	Short: "Format a date range",
	Long: `Format the interval from..to as short text.

Instants may be RFC 3339 ("2023-01-01T00:11:00Z"), a local date and time
("2023-01-01 14:30", "2023-01-01T14:30:00") or a bare date ("2023-01-12").
A bare end date covers the whole of that day.`,
	Example: `  daterange format 2023-01-01 2023-01-12
  daterange format "2023-01-01 00:11" "2023-01-01 14:30" --locale en-GB
  daterange format 2023-01-03 2023-04-20 --separator "–" -o json`,
	Args: cobra.ExactArgs(2),
	RunE: runFormat,
}

func init() {
	addFormatFlags(formatCmd)
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
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
		return output.JSON(w, formattedRange{From: from, To: to, Shape: e.Shape, Text: e.Text})
	}
	fmt.Fprintln(w, e.Text)
	return nil
}
