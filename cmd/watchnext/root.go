package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	watchCmd := newWatchCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "watchnext [path]",
		Short:         "Track and resume episode watching per directory",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Running with no subcommand starts a watch cycle.
			watchCmd.SetContext(cmd.Context())
			return watchCmd.RunE(watchCmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().AddFlagSet(watchCmd.Flags())

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newResetCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
