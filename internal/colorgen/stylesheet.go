package colorgen

import (
	"fmt"
	"strings"
)

// GeneratedHeader is the first line of every generated stylesheet.
const GeneratedHeader = "/* Code generated by colorgen. DO NOT EDIT. */"

// GenerateStylesheet resolves every semantic color against the theme colors
// and renders a single :root block, one declaration per semantic color in
// mapping order:
//
//	--json-dive-color-danger: oklch(0.6 0.2 25); /* red-500 */
//
// An unresolvable reference aborts with a *DanglingReferenceError and no output.
func GenerateStylesheet(mapping ColorMapping, ns Namespace) (string, error) {
	var b strings.Builder

	b.WriteString(GeneratedHeader)
	b.WriteString("\n:root {\n")

	for _, name := range mapping.SemanticColors.Keys() {
		ref, _ := mapping.SemanticColors.Get(name)
		value, ok := mapping.ThemeColors.Get(ref)
		if !ok {
			return "", &DanglingReferenceError{
				Semantic: name,
				Ref:      ref,
				Line:     mapping.SemanticColors.Line(name),
			}
		}
		fmt.Fprintf(&b, "\t%s: %s; /* %s */\n", ns.Property(name), value, ref)
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// Declaration is a color declaration read back from a generated stylesheet.
type Declaration struct {
	Name   string // semantic name, namespace stripped
	Value  string // declared value
	Ref    string // theme color named in the trailing comment
	Line   int
	Column int
}

// ReadStylesheet returns the namespaced color declarations of a generated
// stylesheet in source order.
func ReadStylesheet(source string, ns Namespace) []Declaration {
	toks := tokenize(source)

	var decls []Declaration
	for i := 0; i < len(toks); i++ {
		prop, ok := propertyName(toks[i])
		if !ok {
			continue
		}
		name, ok := ns.ColorName(prop)
		if !ok {
			continue
		}

		value, end, ok := declarationValue(toks, i+1)
		if !ok {
			continue
		}

		decls = append(decls, Declaration{
			Name:   name,
			Value:  value,
			Ref:    trailingComment(toks, end),
			Line:   toks[i].line,
			Column: toks[i].column,
		})
		i = end
	}

	return decls
}
