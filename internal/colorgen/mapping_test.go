package colorgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `theme-colors:
  white: oklch(1 0 0)
  black: oklch(0 0 0)
  gray-100: oklch(0.97 0 0)
semantic-colors:
  light-background: gray-100
  text: black
  surface: white
`

func TestParseMappingKeepsDocumentOrder(t *testing.T) {
	mapping, err := ParseMapping([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"white", "black", "gray-100"}, mapping.ThemeColors.Keys())
	assert.Equal(t, []string{"light-background", "text", "surface"}, mapping.SemanticColors.Keys())

	v, ok := mapping.ThemeColors.Get("gray-100")
	require.True(t, ok)
	assert.Equal(t, "oklch(0.97 0 0)", v)

	assert.Equal(t, 2, mapping.ThemeColors.Line("white"))
	assert.Equal(t, 7, mapping.SemanticColors.Line("text"))
}

func TestMappingEncodeRoundTrip(t *testing.T) {
	mapping, err := ParseMapping([]byte(sampleDocument))
	require.NoError(t, err)

	data, err := mapping.Bytes()
	require.NoError(t, err)
	assert.Equal(t, sampleDocument, string(data))
}

func TestMappingEncodeQuotesAmbiguousScalars(t *testing.T) {
	mapping := ColorMapping{
		ThemeColors:    NewOrderedMap("true", "oklch(1 0 0)", "100", "oklch(0.5 0 0)"),
		SemanticColors: NewOrderedMap("null", "true"),
	}

	data, err := mapping.Bytes()
	require.NoError(t, err)

	decoded, err := ParseMapping(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "100"}, decoded.ThemeColors.Keys())
	ref, _ := decoded.SemanticColors.Get("null")
	assert.Equal(t, "true", ref)
}

func TestMappingEncodeEmptySections(t *testing.T) {
	data, err := ColorMapping{}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "theme-colors: {}\nsemantic-colors: {}\n", string(data))
}

func TestParseMappingEmptyDocument(t *testing.T) {
	mapping, err := ParseMapping(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, mapping.ThemeColors.Len())
	assert.Equal(t, 0, mapping.SemanticColors.Len())
}

func TestParseMappingMissingSection(t *testing.T) {
	mapping, err := ParseMapping([]byte("theme-colors:\n  white: oklch(1 0 0)\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, mapping.ThemeColors.Len())
	assert.Equal(t, 0, mapping.SemanticColors.Len())
}

func TestParseMappingSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantLine int
	}{
		{
			name:     "section is a list",
			document: "theme-colors:\n  - white\n",
			wantLine: 2,
		},
		{
			name:     "nested value",
			document: "semantic-colors:\n  accent:\n    ref: white\n",
			wantLine: 3,
		},
		{
			name:     "name with a space",
			document: "theme-colors:\n  white: oklch(1 0 0)\nsemantic-colors:\n  c d: white\n",
			wantLine: 4,
		},
		{
			name:     "name with a quote",
			document: "semantic-colors:\n  'a\"b': white\n",
			wantLine: 2,
		},
		{
			name:     "name with an empty segment",
			document: "theme-colors:\n  gray--100: oklch(0.9 0 0)\n",
			wantLine: 2,
		},
		{
			name:     "repeated name",
			document: "semantic-colors:\n  accent: white\n  text: black\n  accent: black\n",
			wantLine: 4,
		},
		{
			name:     "null value",
			document: "semantic-colors:\n  accent:\n",
			wantLine: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapping([]byte(tt.document))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, schemaErr.Line)
			}
		})
	}
}

func TestParseMappingUnknownSection(t *testing.T) {
	_, err := ParseMapping([]byte("colours:\n  white: oklch(1 0 0)\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	mapping, err := ParseMapping([]byte(`theme-colors:
  white: oklch(1 0 0)
semantic-colors:
  surface: white
  accent: doesnotexist
  danger: red
`))
	require.NoError(t, err)

	dangling := mapping.Validate()
	require.Len(t, dangling, 2)
	assert.Equal(t, "accent", dangling[0].Semantic)
	assert.Equal(t, "doesnotexist", dangling[0].Ref)
	assert.Equal(t, 5, dangling[0].Line)
	assert.Equal(t, "danger", dangling[1].Semantic)
}

func TestUnusedThemeColors(t *testing.T) {
	mapping, err := ParseMapping([]byte(sampleDocument))
	require.NoError(t, err)
	assert.Empty(t, mapping.UnusedThemeColors())

	mapping.SemanticColors.Delete("text")
	assert.Equal(t, []string{"black"}, mapping.UnusedThemeColors())
}

func TestMergeThemeColorsKeepsSemanticColors(t *testing.T) {
	existing, err := ParseMapping([]byte(sampleDocument))
	require.NoError(t, err)

	extracted := NewOrderedMap("white", "oklch(0.99 0 0)", "red-500", "oklch(0.63 0.21 25)")
	merged := MergeThemeColors(existing, extracted)

	assert.Equal(t, []string{"white", "red-500"}, merged.ThemeColors.Keys())
	assert.Equal(t, existing.SemanticColors.Keys(), merged.SemanticColors.Keys())

	// The merge does not alias the inputs.
	merged.SemanticColors.Set("extra", "white")
	assert.False(t, existing.SemanticColors.Has("extra"))
}

func TestOrderedMapDelete(t *testing.T) {
	m := NewOrderedMap("a", "1", "b", "2", "c", "3")
	m.Delete("b")
	m.Delete("missing")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))

	m.Set("b", "4")
	assert.Equal(t, []string{"a", "c", "b"}, m.Keys())
}

func TestIsColorName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"gray-100", true},
		{"light-background", true},
		{"text_muted", true},
		{"100", true},
		{"", false},
		{"c d", false},
		{`a"b`, false},
		{"-leading", false},
		{"trailing-", false},
		{"double--dash", false},
		{"semi;colon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorName(tt.name))
		})
	}
}
