package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("# test"), 0o600))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "notes.txt", "sub/c.yaml", "sub/d.hcl")

	files, err := FindFilesByExtension(root, ".hcl", ".yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "sub", "c.yaml"),
		filepath.Join(root, "sub", "d.hcl"),
	}, files)
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "graph/a.hcl", "graph/b.yml", "main.hcl", "readme.md")

	t.Run("mixes files and directories and de-duplicates", func(t *testing.T) {
		mainFile := filepath.Join(root, "main.hcl")
		files, err := FindFiles([]string{mainFile, filepath.Join(root, "graph"), mainFile}, ".hcl", ".yml")
		require.NoError(t, err)
		assert.Equal(t, []string{
			mainFile,
			filepath.Join(root, "graph", "a.hcl"),
			filepath.Join(root, "graph", "b.yml"),
		}, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		_, err := FindFiles([]string{filepath.Join(root, "nope.hcl")}, ".hcl")
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("explicit file with unknown extension is an error", func(t *testing.T) {
		_, err := FindFiles([]string{filepath.Join(root, "readme.md")}, ".hcl")
		assert.ErrorContains(t, err, "unsupported file type")
	})
}
