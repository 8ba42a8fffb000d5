package colorgen

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "colorgen"
	Text        string   `json:"Text"`        // "semantic color \"accent\" references unknown theme color \"blue-9\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	Check       string   `json:"Check"`       // "dangling-reference"
	SourceLines []string `json:"SourceLines"` // Lines of the file with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "color-mapping.yml"
	Line     int    `json:"Line"`     // 12, 0 when the issue concerns the whole file
	Column   int    `json:"Column"`   // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// linterName tags every issue
const linterName = "colorgen"

// Check names
const (
	CheckDanglingReference = "dangling-reference"
	CheckStaleStylesheet   = "stale-stylesheet"
	CheckStaleAllowList    = "stale-allowlist"
	CheckRegion            = "region"
	CheckUnusedThemeColor  = "unused-theme-color"
)

// Issue message formats
const (
	IssueMissingFile       = "%s does not exist (run colorgen %s)"
	IssueStaleFile         = "%s is out of date (run colorgen %s)"
	IssueDriftedValue      = "%s is %q, mapping resolves to %q"
	IssueMissingProperty   = "%s is missing from the generated stylesheet"
	IssueExtraProperty     = "%s is no longer in the mapping"
	IssueStaleAllowList    = "allow-list entries do not match semantic colors (run colorgen patch)"
	IssueUnusedThemeColor  = "theme color %q is not referenced by any semantic color"
	IssueDanglingReference = "semantic color %q references unknown theme color %q"
)
