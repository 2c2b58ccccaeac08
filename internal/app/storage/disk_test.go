package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSave(t *testing.T) {
	st, err := New(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)

	filename, err := st.Save("image", "photo.JPG", strings.NewReader("fake image data"))
	require.NoError(t, err)

	// имя: поле формы, метка времени, исходное расширение
	assert.Regexp(t, regexp.MustCompile(`^image-\d+\.JPG$`), filename)

	path, err := st.Resolve(filename)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake image data", string(data))
}

func TestStorageFileURL(t *testing.T) {
	st, err := New(t.TempDir(), "https://parts.example.com/")
	require.NoError(t, err)

	url := st.FileURL("image-123.png")
	assert.Equal(t, "https://parts.example.com/products/uploads/image-123.png", url)
}

func TestStorageResolve(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir, "http://localhost:8080")
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		_, err := st.Resolve("missing.png")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("existing file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "known.png"), []byte("x"), 0o644))

		path, err := st.Resolve("known.png")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))
	})

	t.Run("path elements are stripped", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "safe.png"), []byte("x"), 0o644))

		path, err := st.Resolve("../../safe.png")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(path, filepath.Join(filepath.Base(dir), "safe.png")))
	})
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := New(dir, "http://localhost:8080")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
