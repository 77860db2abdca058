package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/markotravel"
	"github.com/fwojciec/markotravel/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns full content with hash", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.kml")
		content := []byte("<kml><Document/></kml>")
		require.NoError(t, os.WriteFile(path, content, 0644))

		doc, err := fs.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path)
		assert.Equal(t, content, doc.Content)
		assert.Equal(t, fs.Hash(content), doc.Hash)
		assert.NotEmpty(t, doc.Hash)
	})

	t.Run("returns ENOTFOUND for missing path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(filepath.Join(t.TempDir(), "missing.kml"))

		require.Error(t, err)
		assert.Equal(t, markotravel.ENOTFOUND, markotravel.ErrorCode(err))
		assert.Contains(t, markotravel.ErrorMessage(err), "missing.kml")
	})

	t.Run("returns EREAD for unreadable path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, markotravel.EREAD, markotravel.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load("")

		require.Error(t, err)
		assert.Equal(t, markotravel.EINVALID, markotravel.ErrorCode(err))
	})
}

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fs.Hash([]byte("same")), fs.Hash([]byte("same")))
	assert.NotEqual(t, fs.Hash([]byte("one")), fs.Hash([]byte("two")))
	assert.Equal(t, "ef46db3751d8e999", fs.Hash(nil))
}
