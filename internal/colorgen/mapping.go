package colorgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a flat scalar-to-scalar mapping, keeping document order.
func (m *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	*m = OrderedMap{}

	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return &SchemaError{Line: node.Line, Column: node.Column, Msg: "expected a mapping of names to strings"}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return &SchemaError{Line: key.Line, Column: key.Column, Msg: "keys must be plain names"}
		}
		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			return &SchemaError{Line: value.Line, Column: value.Column,
				Msg: fmt.Sprintf("value of %q must be a string", key.Value)}
		}
		if !IsColorName(key.Value) {
			return &SchemaError{Line: key.Line, Column: key.Column,
				Msg: fmt.Sprintf("%q is not a dash-delimited name", key.Value)}
		}
		if m.Has(key.Value) {
			return &SchemaError{Line: key.Line, Column: key.Column,
				Msg: fmt.Sprintf("%q is defined more than once (first on line %d)", key.Value, m.Line(key.Value))}
		}
		m.Set(key.Value, value.Value)
		m.setLine(key.Value, key.Line)
	}

	return nil
}

// IsColorName reports whether name is a dash-delimited identifier usable as
// a custom property suffix: letters, digits and underscores in segments
// joined by single dashes ("gray-100", "light-background").
func IsColorName(name string) bool {
	if name == "" {
		return false
	}
	for _, segment := range strings.Split(name, "-") {
		if segment == "" {
			return false
		}
		for _, r := range segment {
			if !isNameRune(r) {
				return false
			}
		}
	}
	return true
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m OrderedMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.values[k]},
		)
	}
	return node, nil
}

// ParseMapping decodes a mapping document. An empty document is an empty mapping.
func ParseMapping(data []byte) (ColorMapping, error) {
	return LoadMapping(bytes.NewReader(data))
}

// LoadMapping decodes a mapping document from r.
func LoadMapping(r io.Reader) (ColorMapping, error) {
	var mapping ColorMapping

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mapping); err != nil {
		if errors.Is(err, io.EOF) {
			return ColorMapping{}, nil
		}
		return ColorMapping{}, fmt.Errorf("decode color mapping: %w", err)
	}

	return mapping, nil
}

// Encode writes the mapping document as YAML.
func (c ColorMapping) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode color mapping: %w", err)
	}
	return enc.Close()
}

// Bytes returns the YAML encoding of the mapping.
func (c ColorMapping) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate returns one error per semantic color whose theme color is missing,
// in semantic order.
func (c ColorMapping) Validate() []*DanglingReferenceError {
	var dangling []*DanglingReferenceError
	for _, name := range c.SemanticColors.Keys() {
		ref, _ := c.SemanticColors.Get(name)
		if !c.ThemeColors.Has(ref) {
			dangling = append(dangling, &DanglingReferenceError{
				Semantic: name,
				Ref:      ref,
				Line:     c.SemanticColors.Line(name),
			})
		}
	}
	return dangling
}

// UnusedThemeColors returns theme colors that no semantic color references.
func (c ColorMapping) UnusedThemeColors() []string {
	used := make(map[string]bool, c.SemanticColors.Len())
	for _, name := range c.SemanticColors.Keys() {
		ref, _ := c.SemanticColors.Get(name)
		used[ref] = true
	}

	var unused []string
	for _, name := range c.ThemeColors.Keys() {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

// MergeThemeColors replaces the theme-colors section of existing wholesale
// and keeps its curated semantic-colors section.
func MergeThemeColors(existing ColorMapping, themeColors OrderedMap) ColorMapping {
	return ColorMapping{
		ThemeColors:    themeColors.Clone(),
		SemanticColors: existing.SemanticColors.Clone(),
	}
}
