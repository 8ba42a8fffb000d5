package colorgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	core "github.com/jsondive/colorgen/internal/colorgen"
)

// CheckResult contains the findings of a check run
type CheckResult struct {
	Issues       []Issue
	ErrorCount   int
	WarningCount int
	FilesChecked int
}

// Check verifies, without writing anything, that the mapping is consistent
// and that the stylesheet and lint configuration match what Run would write.
//
// Findings:
//   - dangling-reference: a semantic color names a missing theme color (error)
//   - stale-stylesheet:   the stylesheet differs from the generated one (error)
//   - stale-allowlist:    the allow-list region differs from the patch (error)
//   - region:             the lint config has a malformed marker region (error)
//   - unused-theme-color: a theme color has no semantic alias (warning)
func Check(config Config) (*CheckResult, error) {
	mapping, mappingSource, err := readMapping(config.MappingFile)
	if err != nil {
		return nil, err
	}
	mappingLines := core.SplitLines(string(mappingSource))

	result := &CheckResult{FilesChecked: 1}
	var issues []Issue

	// 1. Referential integrity
	dangling := mapping.Validate()
	for _, d := range dangling {
		issues = append(issues, newIssue(SeverityError, CheckDanglingReference,
			fmt.Sprintf(IssueDanglingReference, d.Semantic, d.Ref),
			config.MappingFile, mappingLines, d.Line, column(mappingLines, d.Line, d.Semantic)))
	}

	// 2. Stylesheet drift (only meaningful when the mapping resolves)
	if len(dangling) == 0 {
		stylesheetIssues, err := checkStylesheet(config, mapping)
		if err != nil {
			return nil, err
		}
		issues = append(issues, stylesheetIssues...)
		result.FilesChecked++
	}

	// 3. Allow-list drift
	allowListIssues, err := checkAllowList(config, mapping)
	if err != nil {
		return nil, err
	}
	issues = append(issues, allowListIssues...)
	result.FilesChecked++

	// 4. Unused theme colors
	for _, name := range mapping.UnusedThemeColors() {
		line := mapping.ThemeColors.Line(name)
		issues = append(issues, newIssue(SeverityWarning, CheckUnusedThemeColor,
			fmt.Sprintf(IssueUnusedThemeColor, name),
			config.MappingFile, mappingLines, line, column(mappingLines, line, name)))
	}

	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	sortIssues(issues)
	result.Issues = issues

	return result, nil
}

// checkStylesheet compares the stylesheet on disk with the generated one.
func checkStylesheet(config Config, mapping core.ColorMapping) ([]Issue, error) {
	ns := config.namespace()
	path := config.StylesheetFile

	want, err := core.GenerateStylesheet(mapping, ns)
	if err != nil {
		return nil, fmt.Errorf("generate stylesheet: %w", err)
	}

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Issue{newIssue(SeverityError, CheckStaleStylesheet,
			fmt.Sprintf(IssueMissingFile, path, "generate"), path, nil, 0, 0)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	got := string(content)
	if got == want {
		return nil, nil
	}

	lines := core.SplitLines(got)
	var issues []Issue

	actual := make(map[string]core.Declaration)
	for _, decl := range core.ReadStylesheet(got, ns) {
		actual[decl.Name] = decl
	}

	for _, name := range mapping.SemanticColors.Keys() {
		ref, _ := mapping.SemanticColors.Get(name)
		value, _ := mapping.ThemeColors.Get(ref)

		decl, ok := actual[name]
		delete(actual, name)
		switch {
		case !ok:
			issues = append(issues, newIssue(SeverityError, CheckStaleStylesheet,
				fmt.Sprintf(IssueMissingProperty, ns.Property(name)), path, lines, 0, 0))
		case decl.Value != value:
			issues = append(issues, newIssue(SeverityError, CheckStaleStylesheet,
				fmt.Sprintf(IssueDriftedValue, ns.Property(name), decl.Value, value),
				path, lines, decl.Line, decl.Column))
		}
	}

	for _, decl := range actual {
		issues = append(issues, newIssue(SeverityError, CheckStaleStylesheet,
			fmt.Sprintf(IssueExtraProperty, ns.Property(decl.Name)),
			path, lines, decl.Line, decl.Column))
	}

	// Same declarations, different bytes (order, comments, formatting).
	if len(issues) == 0 {
		line := firstDifference(lines, core.SplitLines(want))
		issues = append(issues, newIssue(SeverityError, CheckStaleStylesheet,
			fmt.Sprintf(IssueStaleFile, path, "generate"), path, lines, line, 1))
	}

	return issues, nil
}

// checkAllowList compares the lint configuration on disk with its patched form.
func checkAllowList(config Config, mapping core.ColorMapping) ([]Issue, error) {
	path := config.LintConfigFile

	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Issue{newIssue(SeverityError, CheckStaleAllowList,
			fmt.Sprintf(IssueMissingFile, path, "patch"), path, nil, 0, 0)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lint config: %w", err)
	}

	lines := core.SplitLines(string(content))
	patched, err := core.Patch(lines, mapping, config.patchOptions())

	var regionErr *core.RegionError
	if errors.As(err, &regionErr) {
		return []Issue{newIssue(SeverityError, CheckRegion, regionErr.Err.Error(),
			path, lines, regionErr.Line, 1)}, nil
	}
	if err != nil {
		return nil, err
	}

	line := firstDifference(lines, patched)
	if line == 0 {
		return nil, nil
	}
	return []Issue{newIssue(SeverityError, CheckStaleAllowList, IssueStaleAllowList,
		path, lines, line, 1)}, nil
}

// newIssue builds an issue, attaching the source line when known.
func newIssue(severity, check, text, file string, lines []string, line, col int) Issue {
	issue := Issue{
		FromLinter: linterName,
		Text:       text,
		Severity:   severity,
		Check:      check,
		Pos:        IssuePos{Filename: file, Line: line, Column: col},
	}
	if line > 0 && line <= len(lines) {
		issue.SourceLines = []string{strings.TrimRight(lines[line-1], "\r\n")}
	}
	return issue
}

// column returns the 1-based column of needle on the given line, or 1.
func column(lines []string, line int, needle string) int {
	if line <= 0 || line > len(lines) {
		return 0
	}
	if idx := strings.Index(lines[line-1], needle); idx >= 0 {
		return idx + 1
	}
	return 1
}

// firstDifference returns the 1-based number of the first line where a
// and b differ, or 0 when they are equal.
func firstDifference(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i + 1
		}
	}
	if len(a) != len(b) {
		return n + 1
	}
	return 0
}

// sortIssues orders issues by file, then line, then column.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
