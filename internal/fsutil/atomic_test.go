package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "page.html")

	require.NoError(t, WriteFileAtomic(path, []byte("<p>x</p>"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not remain")
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	err := WriteFileAtomic(target, []byte("x"), 0o644)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up on failure")
}

func TestCopyFileAtomic_ByteIdentical(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.png")
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff, 0x10, '\r', '\n'}
	require.NoError(t, os.WriteFile(src, payload, 0o600))

	dst := filepath.Join(dir, "out", "img", "logo.png")
	require.NoError(t, CopyFileAtomic(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyFileAtomic_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFileAtomic(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr))
}
