package colorgen

import (
	"fmt"
	"strings"
)

// Region identifies a marker-delimited span by its begin and end marker
// text. A line is a marker line when it contains the marker text.
type Region struct {
	Begin string
	End   string
}

// NewRegion returns the region named name: "BEGIN: <name>" .. "END: <name>".
func NewRegion(name string) Region {
	return Region{Begin: "BEGIN: " + name, End: "END: " + name}
}

// PatchOptions controls how the allow-list region is rewritten.
type PatchOptions struct {
	Region    Region
	Namespace Namespace
	Indent    string // prefix of each entry, DefaultIndent when empty
}

type patchState int

const (
	statePassthrough patchState = iota
	stateInsideRegion
)

// Patch regenerates the allow-list region of a file given as lines (each
// line keeping its terminator, see SplitLines). Marker lines and everything
// outside the region are passed through unchanged; lines inside the region
// are dropped and replaced with one entry per semantic color, written just
// before the end marker.
//
// The file must contain exactly one well-formed region; anything else is a
// *RegionError.
func Patch(lines []string, mapping ColorMapping, opts PatchOptions) ([]string, error) {
	out := make([]string, 0, len(lines)+mapping.SemanticColors.Len())
	state := statePassthrough
	beginLine := 0
	regions := 0

	for i, line := range lines {
		lineNum := i + 1

		switch state {
		case statePassthrough:
			if strings.Contains(line, opts.Region.End) {
				return nil, &RegionError{Err: ErrStrayEndMarker, Line: lineNum}
			}
			out = append(out, line)
			if strings.Contains(line, opts.Region.Begin) {
				if regions > 0 {
					return nil, &RegionError{Err: ErrMultipleRegions, Line: lineNum}
				}
				state = stateInsideRegion
				beginLine = lineNum
			}

		case stateInsideRegion:
			if strings.Contains(line, opts.Region.Begin) {
				return nil, &RegionError{Err: ErrNestedBeginMarker, Line: lineNum}
			}
			if strings.Contains(line, opts.Region.End) {
				out = append(out, AllowListEntries(mapping, opts, lineEnding(line))...)
				out = append(out, line)
				state = statePassthrough
				regions++
			}
		}
	}

	if state == stateInsideRegion {
		return nil, &RegionError{Err: ErrUnterminatedRegion, Line: beginLine}
	}
	if regions == 0 {
		return nil, &RegionError{Err: ErrMissingRegion}
	}

	return out, nil
}

// AllowListEntries renders one quoted, comma-terminated entry per semantic
// color in mapping order. Theme color references are not consulted.
func AllowListEntries(mapping ColorMapping, opts PatchOptions, eol string) []string {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	names := mapping.SemanticColors.Keys()
	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, fmt.Sprintf("%s%q,%s", indent, opts.Namespace.Property(name), eol))
	}
	return entries
}

// SplitLines splits text into lines that keep their "\n" or "\r\n"
// terminators, so that joining them reproduces text exactly.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

// lineEnding returns the terminator of line, "\n" for an unterminated last line.
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
