package cmd

import (
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS(t *testing.T) *memoryfs.FS {
	t.Helper()

	memfs := memoryfs.New()

	require.NoError(t, memfs.MkdirAll("docs/api", 0o755))
	require.NoError(t, memfs.WriteFile("README.md", []byte("# readme\n"), 0o644))
	require.NoError(t, memfs.WriteFile("notes.txt", []byte("notes\n"), 0o644))
	require.NoError(t, memfs.WriteFile("docs/guide.md", []byte("# guide\n"), 0o644))
	require.NoError(t, memfs.WriteFile("docs/api/v1.md", []byte("# v1\n"), 0o644))

	return memfs
}

func TestMatchFilesRecursive(t *testing.T) {
	files, err := matchFiles(testFS(t), []string{"**.md"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"README.md", "docs/guide.md", "docs/api/v1.md"}, files)
}

func TestMatchFilesSingleLevel(t *testing.T) {
	files, err := matchFiles(testFS(t), []string{"docs/*.md"})
	require.NoError(t, err)

	assert.Equal(t, []string{"docs/guide.md"}, files)
}

func TestMatchFilesLiteral(t *testing.T) {
	files, err := matchFiles(testFS(t), []string{"notes.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"notes.txt"}, files)
}

func TestMatchFilesNoHits(t *testing.T) {
	files, err := matchFiles(testFS(t), []string{"*.rst"})
	require.NoError(t, err)

	assert.Empty(t, files)
}

func TestMatchFilesBadPattern(t *testing.T) {
	_, err := matchFiles(testFS(t), []string{"[unclosed"})
	assert.Error(t, err)
}
