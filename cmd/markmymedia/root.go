package main

import (
	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &markFlags{}

	rootCmd := &cobra.Command{
		Use:           "markmymedia [paths...]",
		Short:         "Overlay filename markers onto photos, audio, and video files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "Descend into subdirectories")
	rootCmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "Output directory for marked files")
	rootCmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Number of parallel workers")
	rootCmd.Flags().BoolVarP(&flags.preserve, "preserve-structure", "p", false, "Mirror the source directory layout under the output directory")

	rootCmd.AddCommand(newDepsCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("markmymedia %s\n", version)
			return nil
		},
	}
}
