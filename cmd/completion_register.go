package cmd

import "github.com/spf13/cobra"

// This file wires ValidArgsFunction on commands whose positional arguments
// come from a fixed set. Flag completions are registered next to the flag
// definitions, since a flag must exist before it can be given one.

func init() {
	presetCmd.ValidArgsFunction = completePresetNames
	configSetCmd.ValidArgsFunction = completeConfigSet

	// Batch takes a YAML file.
	batchCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"yml", "yaml"}, cobra.ShellCompDirectiveFilterFileExt
	}
}

// registerFlagCompletion is a helper that registers a flag completion function,
// silently ignoring errors (e.g. if the flag doesn't exist).
func registerFlagCompletion(cmd *cobra.Command, flag string, fn func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)) {
	_ = cmd.RegisterFlagCompletionFunc(flag, fn)
}
