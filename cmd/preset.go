package cmd

import (
	"fmt"
	"time"

	"github.com/dslh/daterange/daterange"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/dslh/daterange/internal/output"
	"github.com/dslh/daterange/internal/preset"
	"github.com/spf13/cobra"
)

var presetInteractive bool

// presetRange is the JSON shape of preset output.
type presetRange struct {
	Name  string          `json:"name"`
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Shape daterange.Shape `json:"shape"`
	Text  string          `json:"text"`
}

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Format a named range relative to today",
	Long: `Format a named range such as this-week or last-month relative to today.
Without a name, every preset is listed.

Presets: today, yesterday, this-week, last-7-days, this-month, last-month,
this-quarter, this-year, last-year.`,
	Example: `  daterange preset last-month
  daterange preset --today 2023-11-15
  daterange preset --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreset,
}

func init() {
	addFormatFlags(presetCmd)
	presetCmd.Flags().BoolVarP(&presetInteractive, "interactive", "i", false, "Pick a preset from a list")
	rootCmd.AddCommand(presetCmd)
}

func runPreset(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	today := s.today()
	s.options.Today = today
	f := s.formatter()

	resolve := func(p preset.Preset) presetRange {
		from, to := p.Range(today)
		e := f.Explain(from, to)
		return presetRange{Name: p.Name, From: from, To: to, Shape: e.Shape, Text: e.Text}
	}

	name, err := interactiveOrArg(cmd, args, presetInteractive, func() ([]selectItem, error) {
		var items []selectItem
		for _, p := range preset.All() {
			r := resolve(p)
			items = append(items, selectItem{
				id:          p.Name,
				title:       p.Name,
				description: r.Text + "  " + p.Description,
			})
		}
		return items, nil
	}, "Select a range")
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if name == "" {
		return listPresets(cmd, resolve)
	}

	p, err := preset.Lookup(name)
	if err != nil {
		return exitcode.Usage(err.Error())
	}
	r := resolve(p)
	if output.IsJSON(outputFormat) {
		return output.JSON(w, r)
	}
	fmt.Fprintln(w, r.Text)
	return nil
}

func listPresets(cmd *cobra.Command, resolve func(preset.Preset) presetRange) error {
	var ranges []presetRange
	for _, p := range preset.All() {
		ranges = append(ranges, resolve(p))
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, ranges)
	}

	lw := output.NewListWriter(w, "PRESET", "FROM", "TO", "TEXT")
	for _, r := range ranges {
		lw.Row(r.Name, output.FormatDateISO(r.From), output.FormatDateISO(r.To), r.Text)
	}
	lw.FlushWithFooter(fmt.Sprintf("Total: %s", pluralize(len(ranges), "preset")))
	return nil
}
