package cmd

import (
	"fmt"

	"github.com/dslh/daterange/internal/batch"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Format every range in a YAML file",
	Long: `Format a list of ranges read from a YAML file, or from stdin when the file
is "-". Each entry has from and to, and may set label, separator and
include_time to override the command-line settings for that entry:

  - label: sprint 42
    from: 2023-01-01
    to: 2023-01-12
  - from: 2023-01-01T00:11:00Z
    to: 2023-01-01T14:30:00Z
    include_time: false`,
	Example: `  daterange batch ranges.yml
  cat ranges.yml | daterange batch - -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	addFormatFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var entries []batch.Entry
	if args[0] == "-" {
		entries, err = batch.Read(cmd.InOrStdin())
	} else {
		entries, err = batch.Load(args[0])
	}
	if err != nil {
		return exitcode.Input("reading ranges", err)
	}

	results, err := batch.Format(entries, s.parseLocation(), s.formatOptions()...)
	if err != nil {
		return exitcode.Input("formatting ranges", err)
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No ranges found.")
		return nil
	}

	lw := output.NewListWriter(w, "LABEL", "FROM", "TO", "SHAPE", "TEXT")
	for _, r := range results {
		label := r.Label
		if label == "" {
			label = output.Dim("-")
		}
		lw.Row(label, output.FormatInstant(r.From), output.FormatInstant(r.To), output.Cyan(r.Shape.String()), r.Text)
	}
	lw.FlushWithFooter(fmt.Sprintf("Total: %s", pluralize(len(results), "range")))
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
