package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsondive/colorgen"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the stylesheet and allow-list when the mapping changes",
	Long: `Watch the mapping file and run generate and patch after every save.
A failed run is reported and watching continues. Stop with Ctrl-C.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	addOutputFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	config := buildConfig(cmd)
	out := cmd.OutOrStdout()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := colorgen.ShouldUseColors(getBoolWithFallback("color", "color", false))

	// Bring outputs up to date before waiting for changes
	result, err := colorgen.Run(config)
	report := func(result *colorgen.RunResult, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", colorgen.RenderStyle(colorgen.StyleRed, "Error:", useColors), err)
			return
		}
		if !quiet {
			printRunResult(cmd, result, config.DryRun)
		}
	}
	report(result, err)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		fmt.Fprintln(out, colorgen.RenderStyle(colorgen.StyleCyan, "Watching "+config.MappingFile, useColors))
	}
	return colorgen.Watch(ctx, config, report)
}
