package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/commands"
	"github.com/walteh/retheme/cmd/retheme/opts"
)

// newRootCmd wires every command to the shared options
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "retheme",
		Short: "Rewrite UI theme classes across source files",
		Long: `retheme applies ordered literal find/replace rules to a fixed set of files,
with extra rule subsets for paths that match. Jobs come from a .retheme.hcl
(or .yaml/.json) file; built-in presets cover common palette changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(o.Setup(cmd.Context()))
		},
	}

	rootCmd.SetOut(o.Out)
	rootCmd.SetErr(o.Err)

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewPlanCmd(o),
		commands.NewCheckCmd(o),
		commands.NewRestoreCmd(o),
		commands.NewPresetsCmd(o),
		newVersionCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", o.ConfigFile, "config file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}
