//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")
	testContent := []byte("test content")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0644)
		assert.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.txt")))
	})
}

func TestManagerAdapter_CopyFile(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	src := filepath.Join(tempDir, "src.conf")
	require.NoError(t, os.WriteFile(src, []byte("iface vmbr0 inet static\n"), 0600))

	t.Run("CopyIntoNewDirectory", func(t *testing.T) {
		dst := filepath.Join(tempDir, "backup", "20240101", "src.conf")
		err := adapter.CopyFile(src, dst)
		require.NoError(t, err)

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("iface vmbr0 inet static\n"), content)

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("MissingSource", func(t *testing.T) {
		err := adapter.CopyFile(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "out"))
		assert.Error(t, err)
	})
}

func TestManagerAdapter_Remove(t *testing.T) {
	adapter := NewManagerAdapter()
	tempDir := t.TempDir()

	target := filepath.Join(tempDir, "lock")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	assert.NoError(t, adapter.Remove(target))
	assert.False(t, adapter.FileExists(target))

	// Removing a missing file is not an error.
	assert.NoError(t, adapter.Remove(target))
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
