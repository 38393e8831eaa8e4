package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "styler",
	Short: "Utility-class and design-property tooling for the page builder",
	Long: `Bidirectional translation between Tailwind-style utility classes and
the builder's structured design properties, plus markup import and
static canvas preview rendering.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".styler.yaml", "Config file path")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the CLI logger from the verbose/quiet settings.
func newLogger() *zap.Logger {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop()
	}
	if getBoolWithFallback("verbose", "verbose", false) {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	return zap.NewNop()
}
