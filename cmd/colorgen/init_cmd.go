package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .colorgen.yaml config file",
	Long:  `Create a .colorgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# colorgen configuration

# Shared settings
namespace: json-dive         # --json-dive-color-*
mapping: color-mapping.yml
verbose: false

# Theme color extraction
extract:
  source: packages/library/src/styles
  include:
    - "theme.css"
  strict: false              # fail on duplicate theme color names

# Stylesheet generation
generate:
  stylesheet: packages/library/src/styles/colors.css

# Allow-list patching
patch:
  file: packages/shared-config/src/sharedESLintConfig.js
  region: Colors             # BEGIN: Colors .. END: Colors
  indent: "\t"

# Drift check
check:
  strict: false              # exit 1 on warnings too
  output-format: issues      # issues | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
