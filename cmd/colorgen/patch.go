package main

import (
	"fmt"
	"io"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:     "patch",
	Aliases: []string{"lint"},
	Short:   "Patch the lint configuration's color allow-list",
	Long: `Replace the lines between the "BEGIN: <region>" and "END: <region>" marker
lines of the lint configuration with one quoted entry per semantic color.
Everything outside the region is left byte-for-byte unchanged.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPatch,
}

func init() {
	f := patchCmd.Flags()
	f.String("lint-config", defaultLintConfig, "Lint configuration file holding the allow-list region")
	f.String("region", "Colors", "Allow-list region name (BEGIN: <name> .. END: <name>)")
	f.String("indent", "\t", "Indent of generated allow-list entries")
}

func runPatch(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)

	result, err := colorgen.Patch(config)
	if err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		useColors := colorgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		printPatchResult(cmd.OutOrStdout(), result, config.DryRun, useColors)
	}
	return nil
}

func printPatchResult(out io.Writer, result *colorgen.PatchResult, dryRun, useColors bool) {
	printFileResult(out, result.LintConfig, dryRun, useColors)
	fmt.Fprintf(out, "  Allow-list entries: %d\n", result.Entries)
}
