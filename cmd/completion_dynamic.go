package cmd

import (
	"github.com/dslh/daterange/internal/config"
	"github.com/dslh/daterange/internal/locale"
	"github.com/dslh/daterange/internal/preset"
	"github.com/spf13/cobra"
)

// commonTimezones are offered for --timezone. Any IANA name is accepted.
var commonTimezones = []string{
	"UTC",
	"Local",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Paris",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Australia/Sydney",
}

// completePresetNames returns preset names for shell completion.
func completePresetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return preset.Names(), cobra.ShellCompDirectiveNoFileComp
}

// completeLocales returns the locales with their own name tables.
func completeLocales(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return locale.Supported(), cobra.ShellCompDirectiveNoFileComp
}

func completeTimezones(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return commonTimezones, cobra.ShellCompDirectiveNoFileComp
}

// completeConfigSet completes the key, then a value for keys with a known
// set of values.
func completeConfigSet(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return config.Keys(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		switch args[0] {
		case "locale":
			return completeLocales(cmd, args, toComplete)
		case "timezone":
			return completeTimezones(cmd, args, toComplete)
		case "include_time":
			return []string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"json"}, cobra.ShellCompDirectiveNoFileComp
}
