package main

import (
	"fmt"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate the stylesheet and patch the allow-list",
	Long: `Run generate and patch from a single read of the mapping file.
This is what colorgen does when no subcommand is given.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRun,
}

func init() {
	addOutputFlags(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)

	result, err := colorgen.Run(config)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		printRunResult(cmd, result, config.DryRun)
	}
	return nil
}

func printRunResult(cmd *cobra.Command, result *colorgen.RunResult, dryRun bool) {
	out := cmd.OutOrStdout()
	useColors := colorgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
	printGenerateResult(out, result.Generate, dryRun, useColors)
	printPatchResult(out, result.Patch, dryRun, useColors)
}
