package colorgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMapping() ColorMapping {
	return ColorMapping{
		ThemeColors: NewOrderedMap(
			"gray-100", "oklch(0.97 0 0)",
			"red-500", "oklch(0.63 0.21 25)",
			"blue-500", "oklch(0.62 0.19 260 / 80%)",
		),
		SemanticColors: NewOrderedMap(
			"light-background", "gray-100",
			"danger", "red-500",
			"link-foreground", "blue-500",
			"badge-background", "gray-100",
		),
	}
}

func TestGenerateStylesheet(t *testing.T) {
	got, err := GenerateStylesheet(sampleMapping(), DefaultNamespace)
	require.NoError(t, err)

	want := GeneratedHeader + "\n" +
		":root {\n" +
		"\t--json-dive-color-light-background: oklch(0.97 0 0); /* gray-100 */\n" +
		"\t--json-dive-color-danger: oklch(0.63 0.21 25); /* red-500 */\n" +
		"\t--json-dive-color-link-foreground: oklch(0.62 0.19 260 / 80%); /* blue-500 */\n" +
		"\t--json-dive-color-badge-background: oklch(0.97 0 0); /* gray-100 */\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestGenerateStylesheetEmptyMapping(t *testing.T) {
	got, err := GenerateStylesheet(ColorMapping{}, DefaultNamespace)
	require.NoError(t, err)
	assert.Equal(t, GeneratedHeader+"\n:root {\n}\n", got)
}

func TestGenerateStylesheetIsIdempotent(t *testing.T) {
	mapping := sampleMapping()

	first, err := GenerateStylesheet(mapping, DefaultNamespace)
	require.NoError(t, err)
	second, err := GenerateStylesheet(mapping, DefaultNamespace)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateStylesheetDanglingReference(t *testing.T) {
	mapping := ColorMapping{
		SemanticColors: NewOrderedMap("accent", "doesnotexist"),
	}

	got, err := GenerateStylesheet(mapping, DefaultNamespace)
	require.Error(t, err)
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, ErrDanglingReference))

	var dangling *DanglingReferenceError
	require.True(t, errors.As(err, &dangling))
	assert.Equal(t, "accent", dangling.Semantic)
	assert.Equal(t, "doesnotexist", dangling.Ref)
	assert.Contains(t, err.Error(), `"accent"`)
	assert.Contains(t, err.Error(), `"doesnotexist"`)
}

func TestGenerateStylesheetDanglingReferenceAfterValidEntries(t *testing.T) {
	mapping := sampleMapping()
	mapping.SemanticColors.Set("accent", "missing")

	got, err := GenerateStylesheet(mapping, DefaultNamespace)
	require.Error(t, err)
	assert.Empty(t, got, "no partial output on failure")
}

func TestReadStylesheetRoundTrip(t *testing.T) {
	mapping := sampleMapping()

	css, err := GenerateStylesheet(mapping, DefaultNamespace)
	require.NoError(t, err)

	decls := ReadStylesheet(css, DefaultNamespace)
	require.Len(t, decls, mapping.SemanticColors.Len())

	for i, name := range mapping.SemanticColors.Keys() {
		ref, _ := mapping.SemanticColors.Get(name)
		value, _ := mapping.ThemeColors.Get(ref)

		assert.Equal(t, name, decls[i].Name)
		assert.Equal(t, value, decls[i].Value, "value of %s", name)
		assert.Equal(t, ref, decls[i].Ref, "ref of %s", name)
		assert.Equal(t, i+3, decls[i].Line)
		assert.Equal(t, 2, decls[i].Column)
	}
}

func TestReadStylesheet(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected []Declaration
	}{
		{
			name: "declaration without comment",
			css:  ":root { --json-dive-color-a: oklch(1 0 0); }",
			expected: []Declaration{
				{Name: "a", Value: "oklch(1 0 0)", Line: 1, Column: 9},
			},
		},
		{
			name: "last declaration without semicolon",
			css:  ":root {\n  --json-dive-color-a: oklch(1 0 0)\n}",
			expected: []Declaration{
				{Name: "a", Value: "oklch(1 0 0)", Line: 2, Column: 3},
			},
		},
		{
			name: "comment on next line is not a ref",
			css:  ":root {\n  --json-dive-color-a: oklch(1 0 0);\n  /* note */\n}",
			expected: []Declaration{
				{Name: "a", Value: "oklch(1 0 0)", Line: 2, Column: 3},
			},
		},
		{
			name:     "other properties ignored",
			css:      ":root { --json-dive-radius-sm: 4px; color: red; }",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadStylesheet(tt.css, DefaultNamespace))
		})
	}
}
