package cmd

import (
	"fmt"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:     "classify <from> <to>",
	Short:   "Print the shape of a date range",
	Example: `  daterange classify 2023-04-01 2023-06-30`,
	Args:    cobra.ExactArgs(2),
	RunE:    runClassify,
}

func init() {
	addFormatFlags(classifyCmd)
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	from, to, err := s.parseRange(args[0], args[1])
	if err != nil {
		return err
	}

	shape := daterange.Classify(from, to)
	if s.verbose != nil {
		s.verbose("classified %s .. %s as %s\n", from, to, shape)
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, formattedRange{From: from, To: to, Shape: shape})
	}
	fmt.Fprintln(w, shape)
	return nil
}
