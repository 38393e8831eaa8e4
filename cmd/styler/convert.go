package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagecraft/styler"
)

var convertCmd = &cobra.Command{
	Use:   "convert [classes...]",
	Short: "Convert between utility classes and structured design JSON",
	Long: `Parse utility-class tokens into a structured design object, or lower a
design JSON file back into the authoritative class string with
--from-design.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from-design", "", "Design JSON file to lower into a class string")
	convertCmd.Flags().Bool("pretty", false, "Indent JSON output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	designPath, _ := cmd.Flags().GetString("from-design")

	if designPath != "" {
		raw, err := os.ReadFile(designPath)
		if err != nil {
			return fmt.Errorf("reading design file: %w", err)
		}
		design := styler.NewDesign()
		if err := json.Unmarshal(raw, &design); err != nil {
			return fmt.Errorf("parsing design file %s: %w", designPath, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), styler.DesignToClassString(design))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("pass class tokens to parse, or --from-design")
	}

	design := styler.ClassesToDesign(strings.Join(args, " "))

	enc := json.NewEncoder(cmd.OutOrStdout())
	if getBoolWithFallback("pretty", "convert.pretty", false) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(design)
}
