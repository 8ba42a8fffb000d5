package colorgen

import (
	"fmt"
	"io"
	"os"

	core "github.com/jsondive/colorgen/internal/colorgen"
)

// Config holds pipeline configuration
type Config struct {
	Namespace      string   // "json-dive" -> --json-dive-color-*
	MappingFile    string   // "color-mapping.yml"
	SourceDir      string   // "packages/library/src/styles"
	Includes       []string // ["theme.css"], doublestar patterns relative to SourceDir
	StylesheetFile string   // "packages/library/src/styles/colors.css"
	LintConfigFile string   // "packages/shared-config/src/sharedESLintConfig.js"
	Region         string   // marker region name, "Colors"
	Indent         string   // allow-list entry indent (default: tab)
	Strict         bool     // Fail extraction on duplicate theme color names
	DryRun         bool     // Report changes without writing files
	Verbose        bool     // Enable debug logging
	Stdout         io.Writer
}

// namespace returns the configured namespace or the default.
func (c Config) namespace() core.Namespace {
	if c.Namespace == "" {
		return core.DefaultNamespace
	}
	return core.Namespace(c.Namespace)
}

// patchOptions builds the patcher options for this config.
func (c Config) patchOptions() core.PatchOptions {
	region := c.Region
	if region == "" {
		region = core.DefaultRegionName
	}
	return core.PatchOptions{
		Region:    core.NewRegion(region),
		Namespace: c.namespace(),
		Indent:    c.Indent,
	}
}

// logf prints debug output when Verbose is set.
func (c Config) logf(format string, args ...any) {
	if !c.Verbose {
		return
	}
	w := c.Stdout
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}

// FileResult describes one output file.
type FileResult struct {
	Path    string
	Changed bool // content differs from what was on disk (written unless DryRun)
}

// ExtractResult contains extraction stats
type ExtractResult struct {
	FilesScanned       int
	FilesSkipped       int // gitignored sources
	ThemeColors        int
	SemanticColors     int // curated aliases carried over from the existing mapping
	Duplicates         []core.Duplicate
	DanglingReferences []*core.DanglingReferenceError // semantic aliases the new theme colors no longer satisfy
	Mapping            FileResult
}

// GenerateResult contains stylesheet generation stats
type GenerateResult struct {
	SemanticColors int
	Stylesheet     FileResult
}

// PatchResult contains allow-list patch stats
type PatchResult struct {
	Entries    int
	LintConfig FileResult
}

// RunResult combines both generators of one run.
type RunResult struct {
	Generate *GenerateResult
	Patch    *PatchResult
}

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
