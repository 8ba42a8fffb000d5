package colorgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	core "github.com/jsondive/colorgen/internal/colorgen"
)

// ErrNoSources is returned when no stylesheet matches the include patterns.
var ErrNoSources = errors.New("no stylesheet sources matched")

// Extract scans the configured stylesheets for theme colors and rewrites the
// mapping file: the theme-colors section is replaced wholesale, the curated
// semantic-colors section of an existing mapping is kept.
func Extract(config Config) (*ExtractResult, error) {
	result := &ExtractResult{}

	// 1. Find stylesheets
	files, stats, err := scanSources(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s: %v", ErrNoSources, config.SourceDir, config.Includes)
	}

	config.logf("Found %d stylesheet(s), %d ignored\n", stats.FilesDiscovered, stats.FilesSkipped)

	// 2. Read and extract
	sources := make([]core.Source, 0, len(files))
	for _, file := range files {
		config.logf("Extracting %s\n", file)

		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		sources = append(sources, core.Source{Path: file, Text: string(content)})
	}

	extracted := core.ExtractFiles(sources, config.namespace())
	result.ThemeColors = extracted.ThemeColors.Len()
	result.Duplicates = extracted.Duplicates

	if config.Strict && len(extracted.Duplicates) > 0 {
		return nil, &core.DuplicateThemeColorError{Duplicates: extracted.Duplicates}
	}

	// 3. Merge with the curated semantic colors
	existing, err := loadMappingIfExists(config.MappingFile)
	if err != nil {
		return nil, err
	}
	merged := core.MergeThemeColors(existing, extracted.ThemeColors)
	result.SemanticColors = merged.SemanticColors.Len()
	result.DanglingReferences = merged.Validate()

	// 4. Write
	data, err := merged.Bytes()
	if err != nil {
		return nil, err
	}
	changed, err := writeFileIfChanged(config.MappingFile, data, config.DryRun)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.Mapping = FileResult{Path: config.MappingFile, Changed: changed}

	return result, nil
}

// Generate resolves the mapping's semantic colors and writes the stylesheet.
// A dangling reference aborts before anything is written.
func Generate(config Config) (*GenerateResult, error) {
	mapping, err := LoadMapping(config.MappingFile)
	if err != nil {
		return nil, err
	}
	return generateWith(config, mapping)
}

func generateWith(config Config, mapping core.ColorMapping) (*GenerateResult, error) {
	css, err := buildStylesheet(config, mapping)
	if err != nil {
		return nil, err
	}
	return writeStylesheet(config, mapping, css)
}

// buildStylesheet renders the stylesheet without touching the disk.
func buildStylesheet(config Config, mapping core.ColorMapping) ([]byte, error) {
	css, err := core.GenerateStylesheet(mapping, config.namespace())
	if err != nil {
		return nil, fmt.Errorf("generate stylesheet: %w", err)
	}
	return []byte(css), nil
}

func writeStylesheet(config Config, mapping core.ColorMapping, css []byte) (*GenerateResult, error) {
	changed, err := writeFileIfChanged(config.StylesheetFile, css, config.DryRun)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	config.logf("Resolved %d semantic colors into %s\n", mapping.SemanticColors.Len(), config.StylesheetFile)

	return &GenerateResult{
		SemanticColors: mapping.SemanticColors.Len(),
		Stylesheet:     FileResult{Path: config.StylesheetFile, Changed: changed},
	}, nil
}

// Patch rewrites the allow-list region of the lint configuration file.
func Patch(config Config) (*PatchResult, error) {
	mapping, err := LoadMapping(config.MappingFile)
	if err != nil {
		return nil, err
	}
	return patchWith(config, mapping)
}

func patchWith(config Config, mapping core.ColorMapping) (*PatchResult, error) {
	patched, err := buildLintConfig(config, mapping)
	if err != nil {
		return nil, err
	}
	return writeLintConfig(config, mapping, patched)
}

// buildLintConfig reads the lint configuration and returns its patched
// content without writing it.
func buildLintConfig(config Config, mapping core.ColorMapping) ([]byte, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(config.LintConfigFile)
	if err != nil {
		return nil, fmt.Errorf("read lint config: %w", err)
	}

	lines, err := core.Patch(core.SplitLines(string(content)), mapping, config.patchOptions())
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", config.LintConfigFile, err)
	}
	return []byte(core.JoinLines(lines)), nil
}

func writeLintConfig(config Config, mapping core.ColorMapping, patched []byte) (*PatchResult, error) {
	changed, err := writeFileIfChanged(config.LintConfigFile, patched, config.DryRun)
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	config.logf("Wrote %d allow-list entries into %s\n", mapping.SemanticColors.Len(), config.LintConfigFile)

	return &PatchResult{
		Entries:    mapping.SemanticColors.Len(),
		LintConfig: FileResult{Path: config.LintConfigFile, Changed: changed},
	}, nil
}

// Run generates the stylesheet and patches the lint configuration from one
// snapshot of the mapping file. Both outputs are built before either is
// written, so a failure in one leaves both files untouched.
func Run(config Config) (*RunResult, error) {
	mapping, err := LoadMapping(config.MappingFile)
	if err != nil {
		return nil, err
	}

	// 1. Build
	css, err := buildStylesheet(config, mapping)
	if err != nil {
		return nil, err
	}
	patched, err := buildLintConfig(config, mapping)
	if err != nil {
		return nil, err
	}

	// 2. Write
	generated, err := writeStylesheet(config, mapping, css)
	if err != nil {
		return nil, err
	}
	patchResult, err := writeLintConfig(config, mapping, patched)
	if err != nil {
		return nil, err
	}

	return &RunResult{Generate: generated, Patch: patchResult}, nil
}

// LoadMapping reads and decodes the mapping file.
func LoadMapping(path string) (core.ColorMapping, error) {
	mapping, _, err := readMapping(path)
	return mapping, err
}

// readMapping decodes the mapping file and also returns its raw content.
func readMapping(path string) (core.ColorMapping, []byte, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return core.ColorMapping{}, nil, fmt.Errorf("read mapping: %w", err)
	}
	mapping, err := core.ParseMapping(data)
	if err != nil {
		return core.ColorMapping{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return mapping, data, nil
}

// loadMappingIfExists is LoadMapping with a missing file treated as empty.
func loadMappingIfExists(path string) (core.ColorMapping, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return core.ColorMapping{}, nil
	}
	return LoadMapping(path)
}
