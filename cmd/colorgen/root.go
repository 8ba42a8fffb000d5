package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "colorgen",
	Short: "Semantic color generator for light-dark theme stylesheets",
	Long: `Keep a theme's raw color declarations, the semantic color mapping,
the generated stylesheet and the lint allow-list in sync.

  theme.css --extract--> color-mapping.yml --generate--> colors.css
                                          \--patch-----> lint config allow-list`,
	// Default behavior: run generate and patch when no subcommand is given.
	// We must call loadConfig here because PreRunE of runCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRun(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")
	pf.String("namespace", "json-dive", "Custom property namespace (--<namespace>-color-*)")
	pf.String("mapping", "color-mapping.yml", "Color mapping file")
	pf.Bool("dry-run", false, "Report changes without writing files")

	// Generator flags for the default run
	addOutputFlags(rootCmd)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addOutputFlags registers the flags of the stylesheet and allow-list outputs.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("stylesheet", defaultStylesheet, "Generated stylesheet path")
	f.String("lint-config", defaultLintConfig, "Lint configuration file holding the allow-list region")
	f.String("region", "Colors", "Allow-list region name (BEGIN: <name> .. END: <name>)")
	f.String("indent", "\t", "Indent of generated allow-list entries")
}
