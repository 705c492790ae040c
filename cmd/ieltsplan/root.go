package main

import (
	"github.com/spf13/cobra"

	"github.com/sparkskytech/ieltsplan/internal/logger"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ieltsplan",
		Short:         "IELTS study plan generator",
		Long:          "ieltsplan builds a week-by-week IELTS study schedule from your current and target band scores.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logger.SetDefault(logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(logger.ParseLevel(level)),
				logger.WithColors(false),
			))
		},
	}

	rootCmd.PersistentFlags().String("log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}
