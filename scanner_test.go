package colorgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSources(t *testing.T) {
	dir := t.TempDir()
	for _, file := range []string{
		"theme.css",
		"tokens/base.css",
		"tokens/dark/overrides.css",
		"tokens/readme.md",
	} {
		path := filepath.Join(dir, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(":root {}\n"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.css"), 0o755))

	tests := []struct {
		name     string
		includes []string
		want     []string
		first    string
	}{
		{
			name:     "single file",
			includes: []string{"theme.css"},
			want:     []string{"theme.css"},
		},
		{
			name:     "double star",
			includes: []string{"tokens/**/*.css"},
			want:     []string{"tokens/base.css", "tokens/dark/overrides.css"},
		},
		{
			name:     "pattern order wins and duplicates are dropped",
			includes: []string{"theme.css", "**/*.css", "theme.css"},
			want:     []string{"theme.css", "tokens/base.css", "tokens/dark/overrides.css"},
			first:    "theme.css",
		},
		{
			name:     "directories are skipped",
			includes: []string{"*.css"},
			want:     []string{"theme.css"},
		},
		{
			name:     "no matches",
			includes: []string{"missing/*.css"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stats, err := scanSources(dir, tt.includes)
			require.NoError(t, err)

			var got []string
			for _, file := range files {
				rel, err := filepath.Rel(dir, file)
				require.NoError(t, err)
				got = append(got, filepath.ToSlash(rel))
			}
			assert.ElementsMatch(t, tt.want, got)
			if tt.first != "" {
				require.NotEmpty(t, got)
				assert.Equal(t, tt.first, got[0])
			}
			assert.Equal(t, len(tt.want), stats.FilesScanned)
			assert.Equal(t, 0, stats.FilesSkipped)
		})
	}
}

func TestScanSources_BadPattern(t *testing.T) {
	_, _, err := scanSources(t.TempDir(), []string{"[.css"})
	require.Error(t, err)
}

func TestShouldSkipSource_AbsolutePath(t *testing.T) {
	assert.False(t, shouldSkipSource(filepath.Join(t.TempDir(), "theme.css")))
}
