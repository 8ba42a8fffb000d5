// Package colorgen keeps a theme's raw color declarations, a semantic color
// mapping, a derived stylesheet and a lint allow-list in sync.
//
// colorgen extracts light-dark(oklch(...)) theme colors from stylesheets into
// a YAML mapping, resolves the mapping's semantic aliases into a generated
// stylesheet and patches the lint configuration's allow-list region.
//
// # Extraction
//
// Refresh the theme colors of the mapping file, keeping semantic colors:
//
//	config := colorgen.Config{
//		MappingFile: "color-mapping.yml",
//		SourceDir:   "packages/library/src/styles",
//		Includes:    []string{"theme.css"},
//	}
//	result, err := colorgen.Extract(config)
//
// # Generation
//
// Write the stylesheet and the allow-list from one mapping snapshot:
//
//	config.StylesheetFile = "packages/library/src/styles/colors.css"
//	config.LintConfigFile = "packages/shared-config/src/sharedESLintConfig.js"
//	result, err := colorgen.Run(config)
//
// # Checking
//
// Report drift without writing anything (CI):
//
//	result, err := colorgen.Check(config)
//	colorgen.WriteOutput(os.Stdout, result, colorgen.OutputIssues, colorgen.ReporterConfig{})
//
// # CLI Tool
//
// colorgen also provides a CLI tool. Install with:
//
//	go install github.com/jsondive/colorgen/cmd/colorgen@latest
package colorgen
