package main

import (
	"fmt"
	"io"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"css"},
	Short:   "Generate the semantic color stylesheet from the mapping",
	Long: `Resolve every semantic color of the mapping against its theme color and
write one :root block with a declaration per semantic color.
A semantic color naming a missing theme color aborts without writing.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("stylesheet", defaultStylesheet, "Generated stylesheet path")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)

	result, err := colorgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		useColors := colorgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		printGenerateResult(cmd.OutOrStdout(), result, config.DryRun, useColors)
	}
	return nil
}

func printGenerateResult(out io.Writer, result *colorgen.GenerateResult, dryRun, useColors bool) {
	printFileResult(out, result.Stylesheet, dryRun, useColors)
	fmt.Fprintf(out, "  Semantic colors: %d\n", result.SemanticColors)
}

// printFileResult reports whether an output file was written.
func printFileResult(out io.Writer, file colorgen.FileResult, dryRun, useColors bool) {
	switch {
	case !file.Changed:
		fmt.Fprintln(out, colorgen.RenderStyle(colorgen.StyleGray, "Unchanged "+file.Path, useColors))
	case dryRun:
		fmt.Fprintln(out, colorgen.RenderStyle(colorgen.StyleYellow, "Would write "+file.Path, useColors))
	default:
		fmt.Fprintln(out, colorgen.RenderStyle(colorgen.StyleGreen, "Wrote "+file.Path, useColors))
	}
}
