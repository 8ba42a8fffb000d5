package main

import (
	"errors"
	"fmt"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

// errCheckFailed makes the process exit 1 after check printed its findings.
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the mapping, stylesheet and allow-list are in sync",
	Long: `Report, without writing anything, semantic colors naming missing theme
colors, a stylesheet or allow-list that differs from what run would write,
malformed allow-list regions and theme colors no semantic color uses.
Exits 1 on errors (and on warnings with --strict).`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	addOutputFlags(checkCmd)
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (colorgen) suffix on issues")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)

	result, err := colorgen.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := colorgen.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", ""))

	if !quiet {
		if err := colorgen.WriteOutput(cmd.OutOrStdout(), result, format, buildReporterConfig()); err != nil {
			return err
		}
	}

	// Soft gate: only errors fail unless strict
	strict := getBoolWithFallback("strict", "check.strict", false)
	if result.ErrorCount > 0 || (strict && len(result.Issues) > 0) {
		return errCheckFailed
	}
	return nil
}
