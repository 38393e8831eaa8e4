package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagecraft/styler/internal/markup"
)

var importCmd = &cobra.Command{
	Use:   "import [globs...]",
	Short: "Scan external HTML for styled elements or lift a file into layers",
	Long: `Scan files matching the glob patterns for elements with utility
classes and report what the styling vocabulary recognizes. With
--layers, lift a single HTML file into a builder layer tree instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("layers", "", "Write a layer-tree JSON for one input file")
	importCmd.Flags().String("gitignore", ".gitignore", "Gitignore file for skip rules")
}

func runImport(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	patterns := args
	if len(patterns) == 0 {
		patterns = getStringsWithFallback("paths", "import.paths", []string{"**/*.html"})
	}

	if layersOut := getStringWithFallback("layers", "import.layers", ""); layersOut != "" {
		if len(args) != 1 {
			return fmt.Errorf("--layers takes exactly one input file")
		}
		layers, err := markup.ImportFile(args[0])
		if err != nil {
			return fmt.Errorf("importing %s: %w", args[0], err)
		}
		raw, err := json.MarshalIndent(layers, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(layersOut, raw, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", layersOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d root layers into %s\n", len(layers), layersOut)
		return nil
	}

	scanner := markup.NewScanner(
		markup.WithLogger(log),
		markup.WithGitIgnore(getStringWithFallback("gitignore", "import.gitignore", ".gitignore")),
	)
	findings, stats, err := scanner.ScanFiles(patterns)
	if err != nil {
		// Per-file failures are aggregated; report them but still show
		// what was scanned.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		useColors := getBoolWithFallback("color", "color", false)
		markup.WriteReport(cmd.OutOrStdout(), findings, stats, useColors)
	}
	return nil
}
