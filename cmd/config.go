package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dslh/daterange/internal/config"
	"github.com/dslh/daterange/internal/exitcode"
	"github.com/dslh/daterange/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change formatting defaults",
	Long: `Show or change the defaults stored in the config file.

Keys: locale, timezone, separator, include_time. Each can be overridden by a
DATERANGE_* environment variable and by the matching command-line flag.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Store a default in the config file",
	Example: `  daterange config set locale en-GB
  daterange config set include_time false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return exitcode.General("loading config", err)
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, map[string]any{
			"locale":       cfg.Locale,
			"timezone":     cfg.Timezone,
			"separator":    cfg.Separator,
			"include_time": cfg.IncludeTime,
		})
	}

	values := map[string]string{
		"locale":       orDefault(cfg.Locale, "from environment"),
		"timezone":     orDefault(cfg.Timezone, "as given"),
		"separator":    strconv.Quote(cfg.Separator),
		"include_time": strconv.FormatBool(cfg.IncludeTime),
	}

	d := output.NewDetailWriter(w, "CONFIG", config.Path())
	var fields []output.KeyValue
	for _, key := range config.Keys() {
		value := values[key]
		if env := config.EnvVar(key); os.Getenv(env) != "" {
			value += "  " + output.Yellowf("(from %s)", env)
		}
		fields = append(fields, output.KV(key, value))
	}
	d.Fields(fields)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := config.Set(key, value); err != nil {
		return exitcode.Usage(err.Error())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", output.Green("Saved"), key, strconv.Quote(value))
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return output.Dim(fallback)
	}
	return value
}
