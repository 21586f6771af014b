package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var logLevel string
	var plain bool

	ctx := newCommandContext(&logLevel, &plain)

	rootCmd := &cobra.Command{
		Use:           "cookbook",
		Short:         "Browse the sample cookbook and price recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Render tables with ASCII borders")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCostCommand(ctx))

	return rootCmd
}
