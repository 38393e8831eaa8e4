package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .styler.yaml config file",
	Long:  `Create a .styler.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".styler.yaml"); err == nil && !force {
			return fmt.Errorf(".styler.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".styler.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .styler.yaml")
		return nil
	},
}

const defaultConfig = `# styler configuration

# Shared settings
verbose: false
color: false

# Markup import settings
import:
  paths:
    - "**/*.html"
  gitignore: .gitignore

# Preview rendering settings
preview:
  breakpoint: desktop      # desktop | tablet | mobile
  state: neutral           # neutral | hover | focus | active | disabled | current

# Conversion settings
convert:
  pretty: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
