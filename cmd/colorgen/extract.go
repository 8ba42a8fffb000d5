package main

import (
	"fmt"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract theme colors from stylesheets into the mapping file",
	Long: `Scan stylesheets for --<namespace>-color-* declarations whose value is
light-dark(oklch(...), ...) and rewrite the theme-colors section of the
mapping file. The curated semantic-colors section is kept.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.String("source", defaultSourceDir, "Source stylesheet directory")
	f.StringSlice("include", defaultIncludes, "Glob patterns for stylesheets to scan, relative to --source")
	f.Bool("strict", false, "Fail on duplicate theme color names")
}

func runExtract(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)

	result, err := colorgen.Extract(config)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	out := cmd.OutOrStdout()
	useColors := colorgen.ShouldUseColors(getBoolWithFallback("color", "color", false))

	printFileResult(out, result.Mapping, config.DryRun, useColors)
	fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(out, "  Files ignored: %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(out, "  Theme colors: %d\n", result.ThemeColors)
	fmt.Fprintf(out, "  Semantic colors kept: %d\n", result.SemanticColors)

	for _, d := range result.Duplicates {
		fmt.Fprintf(out, "  %s %s:%d redeclares %q (first declared at %s:%d)\n",
			colorgen.RenderStyle(colorgen.StyleYellow, "Warning:", useColors),
			d.File, d.Line, d.Name, d.FirstFile, d.FirstLine)
	}
	for _, d := range result.DanglingReferences {
		fmt.Fprintf(out, "  %s %v\n",
			colorgen.RenderStyle(colorgen.StyleYellow, "Warning:", useColors), d)
	}

	return nil
}
