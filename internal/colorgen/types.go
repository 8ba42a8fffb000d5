package colorgen

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultNamespace is the custom property namespace used when none is configured.
const DefaultNamespace Namespace = "json-dive"

// DefaultRegionName names the marker region in the lint configuration.
const DefaultRegionName = "Colors"

// DefaultIndent prefixes each generated allow-list entry.
const DefaultIndent = "\t"

// Namespace is the custom property namespace, e.g. "json-dive".
// Color properties are spelled --<namespace>-color-<name>.
type Namespace string

// PropertyPrefix returns the prefix shared by all color properties ("--json-dive-color").
func (n Namespace) PropertyPrefix() string {
	return "--" + string(n) + "-color"
}

// Property returns the custom property name for a color name.
func (n Namespace) Property(name string) string {
	return n.PropertyPrefix() + "-" + name
}

// ColorName strips the namespace prefix from a property name.
// Returns false when the property is outside the namespace or the stripped
// name is not a valid color name (see IsColorName).
func (n Namespace) ColorName(property string) (string, bool) {
	rest, ok := strings.CutPrefix(property, n.PropertyPrefix())
	if !ok {
		return "", false
	}
	rest = strings.TrimLeft(rest, "-")
	if !IsColorName(rest) {
		return "", false
	}
	return rest, true
}

// OrderedMap is an insertion-ordered string map.
//
// Setting an existing key replaces its value in place: the key keeps the
// position of its first occurrence and the last value wins.
type OrderedMap struct {
	keys   []string
	values map[string]string
	lines  map[string]int // source line per key, set when decoded from YAML
}

// NewOrderedMap builds a map from alternating key, value pairs.
func NewOrderedMap(pairs ...string) OrderedMap {
	var m OrderedMap
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set stores value under key, returning the previous value if there was one.
func (m *OrderedMap) Set(key, value string) (previous string, replaced bool) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	previous, replaced = m.values[key]
	if !replaced {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return previous, replaced
}

// Get returns the value stored under key.
func (m OrderedMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m OrderedMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *OrderedMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	delete(m.lines, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m OrderedMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m OrderedMap) Len() int {
	return len(m.keys)
}

// Line returns the 1-based source line of key in the document it was
// decoded from, or 0 when unknown.
func (m OrderedMap) Line(key string) int {
	return m.lines[key]
}

// Clone returns a deep copy.
func (m OrderedMap) Clone() OrderedMap {
	var c OrderedMap
	for _, k := range m.keys {
		c.Set(k, m.values[k])
		if line, ok := m.lines[k]; ok {
			c.setLine(k, line)
		}
	}
	return c
}

func (m *OrderedMap) setLine(key string, line int) {
	if m.lines == nil {
		m.lines = make(map[string]int)
	}
	m.lines[key] = line
}

// ColorMapping is the mapping store document: raw theme colors plus the
// curated semantic aliases that point at them.
type ColorMapping struct {
	ThemeColors    OrderedMap `yaml:"theme-colors"`    // theme name -> color expression
	SemanticColors OrderedMap `yaml:"semantic-colors"` // semantic name -> theme name
}

// Sentinel errors for the pipeline's failure classes.
var (
	ErrDanglingReference  = errors.New("dangling theme color reference")
	ErrDuplicateThemeName = errors.New("duplicate theme color name")
	ErrMissingRegion      = errors.New("begin marker not found")
	ErrUnterminatedRegion = errors.New("end marker not found before end of input")
	ErrNestedBeginMarker  = errors.New("begin marker inside region")
	ErrStrayEndMarker     = errors.New("end marker without begin marker")
	ErrMultipleRegions    = errors.New("more than one marker region")
)

// DanglingReferenceError reports a semantic color whose theme color does not exist.
type DanglingReferenceError struct {
	Semantic string
	Ref      string
	Line     int // line of the semantic entry in the mapping document, 0 if unknown
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("semantic color %q references unknown theme color %q", e.Semantic, e.Ref)
}

// Is makes errors.Is(err, ErrDanglingReference) match.
func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

// Duplicate records a theme color declared more than once.
type Duplicate struct {
	Name      string
	Previous  string // value that was overwritten
	Value     string // value that won
	File      string
	Line      int
	FirstFile string
	FirstLine int
}

// DuplicateThemeColorError is returned in strict mode when extraction finds duplicates.
type DuplicateThemeColorError struct {
	Duplicates []Duplicate
}

func (e *DuplicateThemeColorError) Error() string {
	names := make([]string, 0, len(e.Duplicates))
	for _, d := range e.Duplicates {
		names = append(names, d.Name)
	}
	return fmt.Sprintf("%d duplicate theme color declaration(s): %s",
		len(e.Duplicates), strings.Join(names, ", "))
}

// Unwrap returns ErrDuplicateThemeName.
func (e *DuplicateThemeColorError) Unwrap() error {
	return ErrDuplicateThemeName
}

// RegionError reports a malformed marker region. Line is 1-based; for
// ErrUnterminatedRegion it points at the begin marker.
type RegionError struct {
	Err  error
	Line int
}

func (e *RegionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *RegionError) Unwrap() error {
	return e.Err
}

// SchemaError reports a mapping document that does not have the expected shape.
type SchemaError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}
