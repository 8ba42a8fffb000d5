package colorgen

import "github.com/tdewolff/parse/v2/css"

// Dual-mode wrapper and the perceptual color function captured inside it:
//
//	--json-dive-color-gray-100: light-dark(oklch(0.97 0 0), oklch(0.2 0 0));
const (
	dualModeFunction   = "light-dark"
	perceptualFunction = "oklch"
)

// Source is a named stylesheet text.
type Source struct {
	Path string
	Text string
}

// ExtractResult holds the theme colors found in one or more stylesheets.
type ExtractResult struct {
	ThemeColors OrderedMap
	Duplicates  []Duplicate
	Matched     int // declarations matched, including duplicates
}

// Extract scans stylesheet source for namespaced color declarations whose
// value is light-dark(oklch(...), ...), and returns theme name -> the first
// argument's oklch(...) text in source order. Anything else is skipped.
func Extract(source string, ns Namespace) *ExtractResult {
	return ExtractFiles([]Source{{Text: source}}, ns)
}

// ExtractFiles extracts from several sources in order into one map. A name
// declared again overwrites the earlier value but keeps its position.
func ExtractFiles(sources []Source, ns Namespace) *ExtractResult {
	result := &ExtractResult{}

	type origin struct {
		file string
		line int
	}
	seen := make(map[string]origin)

	for _, src := range sources {
		toks := tokenize(src.Text)

		for i := 0; i < len(toks); i++ {
			prop, ok := propertyName(toks[i])
			if !ok {
				continue
			}
			name, ok := ns.ColorName(prop)
			if !ok {
				continue
			}

			value, end, ok := matchDualModeColor(toks, i+1)
			if !ok {
				continue
			}
			result.Matched++

			previous, replaced := result.ThemeColors.Set(name, value)
			if replaced {
				first := seen[name]
				result.Duplicates = append(result.Duplicates, Duplicate{
					Name:      name,
					Previous:  previous,
					Value:     value,
					File:      src.Path,
					Line:      toks[i].line,
					FirstFile: first.file,
					FirstLine: first.line,
				})
			} else {
				seen[name] = origin{file: src.Path, line: toks[i].line}
			}

			i = end
		}
	}

	return result
}

// matchDualModeColor matches `: light-dark( oklch(...)` starting after a
// property name and returns the oklch call text and the index of its
// closing parenthesis.
func matchDualModeColor(toks []token, i int) (string, int, bool) {
	i = skipTrivia(toks, i)
	if i >= len(toks) || toks[i].tt != css.ColonToken {
		return "", i, false
	}

	i = skipTrivia(toks, i+1)
	if i >= len(toks) || !isFunction(toks[i], dualModeFunction) {
		return "", i, false
	}

	i = skipTrivia(toks, i+1)
	if i >= len(toks) || !isFunction(toks[i], perceptualFunction) {
		return "", i, false
	}

	return captureCall(toks, i)
}
