package colorgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchOptions() PatchOptions {
	return PatchOptions{
		Region:    NewRegion(DefaultRegionName),
		Namespace: DefaultNamespace,
	}
}

func xyMapping() ColorMapping {
	return ColorMapping{
		ThemeColors:    NewOrderedMap("white", "oklch(1 0 0)"),
		SemanticColors: NewOrderedMap("x", "white", "y", "missing-is-fine-here"),
	}
}

func TestPatchReplacesStaleContent(t *testing.T) {
	input := SplitLines(`export const allowed = [
	"--json-dive-radius-sm",
	// BEGIN: Colors.
	"--old-a",
	"--old-b",
	// END: Colors.
	"--json-dive-shadow-lg",
]
`)

	got, err := Patch(input, xyMapping(), patchOptions())
	require.NoError(t, err)

	want := `export const allowed = [
	"--json-dive-radius-sm",
	// BEGIN: Colors.
	"--json-dive-color-x",
	"--json-dive-color-y",
	// END: Colors.
	"--json-dive-shadow-lg",
]
`
	assert.Equal(t, want, JoinLines(got))

	// Lines outside the region are identical.
	assert.Equal(t, input[:3], got[:3])
	assert.Equal(t, input[5:], got[5:])
}

func TestPatchEmptyRegion(t *testing.T) {
	input := SplitLines("// BEGIN: Colors\n// END: Colors\n")

	got, err := Patch(input, xyMapping(), patchOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"// BEGIN: Colors\n",
		"\t\"--json-dive-color-x\",\n",
		"\t\"--json-dive-color-y\",\n",
		"// END: Colors\n",
	}, got)
}

func TestPatchNoSemanticColorsClearsRegion(t *testing.T) {
	input := SplitLines("a\n// BEGIN: Colors\n\"--old\",\n// END: Colors\nb\n")

	got, err := Patch(input, ColorMapping{}, patchOptions())
	require.NoError(t, err)
	assert.Equal(t, "a\n// BEGIN: Colors\n// END: Colors\nb\n", JoinLines(got))
}

func TestPatchIsIdempotent(t *testing.T) {
	input := SplitLines("[\n// BEGIN: Colors\n\"--old\",\n// END: Colors\n]\n")

	first, err := Patch(input, xyMapping(), patchOptions())
	require.NoError(t, err)
	second, err := Patch(first, xyMapping(), patchOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPatchPreservesLineEndings(t *testing.T) {
	input := SplitLines("a  \r\n// BEGIN: Colors\r\n\"--old\",\r\n// END: Colors\r\n\tb\t\r\n")

	got, err := Patch(input, xyMapping(), patchOptions())
	require.NoError(t, err)
	assert.Equal(t,
		"a  \r\n// BEGIN: Colors\r\n\t\"--json-dive-color-x\",\r\n\t\"--json-dive-color-y\",\r\n// END: Colors\r\n\tb\t\r\n",
		JoinLines(got))
}

func TestPatchEndMarkerOnLastLineWithoutNewline(t *testing.T) {
	input := SplitLines("// BEGIN: Colors\n// END: Colors")

	got, err := Patch(input, xyMapping(), patchOptions())
	require.NoError(t, err)
	assert.Equal(t,
		"// BEGIN: Colors\n\t\"--json-dive-color-x\",\n\t\"--json-dive-color-y\",\n// END: Colors",
		JoinLines(got))
}

func TestPatchCustomIndentAndRegion(t *testing.T) {
	opts := PatchOptions{
		Region:    NewRegion("Palette"),
		Namespace: Namespace("acme"),
		Indent:    "    ",
	}
	input := SplitLines("# BEGIN: Palette\n# END: Palette\n")

	got, err := Patch(input, xyMapping(), opts)
	require.NoError(t, err)
	assert.Equal(t, "# BEGIN: Palette\n    \"--acme-color-x\",\n    \"--acme-color-y\",\n# END: Palette\n", JoinLines(got))
}

func TestPatchRegionErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "unterminated region",
			input:    "a\n// BEGIN: Colors\n\"--old\",\n",
			wantErr:  ErrUnterminatedRegion,
			wantLine: 2,
		},
		{
			name:     "missing region",
			input:    "a\nb\n",
			wantErr:  ErrMissingRegion,
			wantLine: 0,
		},
		{
			name:     "empty file",
			input:    "",
			wantErr:  ErrMissingRegion,
			wantLine: 0,
		},
		{
			name:     "end marker before begin",
			input:    "// END: Colors\n// BEGIN: Colors\n",
			wantErr:  ErrStrayEndMarker,
			wantLine: 1,
		},
		{
			name:     "nested begin marker",
			input:    "// BEGIN: Colors\n// BEGIN: Colors\n// END: Colors\n",
			wantErr:  ErrNestedBeginMarker,
			wantLine: 2,
		},
		{
			name:     "second region",
			input:    "// BEGIN: Colors\n// END: Colors\n// BEGIN: Colors\n// END: Colors\n",
			wantErr:  ErrMultipleRegions,
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(SplitLines(tt.input), xyMapping(), patchOptions())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var regionErr *RegionError
			require.True(t, errors.As(err, &regionErr))
			assert.Equal(t, tt.wantLine, regionErr.Line)
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single unterminated", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, JoinLines(got))
		})
	}
}
