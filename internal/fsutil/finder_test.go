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
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0o644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.pp", "a.pp", "notes.txt", "nested/c.pp", "nested/deeper/d.pp")

	files, err := FindFilesByExtension(root, ".pp")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.pp"),
		filepath.Join(root, "b.pp"),
		filepath.Join(root, "nested", "c.pp"),
		filepath.Join(root, "nested", "deeper", "d.pp"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestResolvePath(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "site.pp", "readme.md", "mods/x.pp")

	t.Run("directory", func(t *testing.T) {
		files, err := ResolvePath(root, ".pp")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("single file", func(t *testing.T) {
		path := filepath.Join(root, "site.pp")
		files, err := ResolvePath(path, ".pp")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := ResolvePath(filepath.Join(root, "readme.md"), ".pp")
		assert.ErrorContains(t, err, "is not a .pp file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolvePath(filepath.Join(root, "nope"), ".pp")
		assert.ErrorContains(t, err, "path not found")
	})
}
