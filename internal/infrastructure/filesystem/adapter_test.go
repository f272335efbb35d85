package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/application/port"
)

func writeFile(t *testing.T, path, content string, perm fs.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func TestAdapter_ReadAndStat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	writeFile(t, path, "font-size = 12\n", 0o644)

	a := New()

	data, err := a.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "font-size = 12\n", string(data))

	info, err := a.Stat(ctx, path)
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, int64(15), info.Size)
	assert.False(t, info.ModTime.IsZero())
}

func TestAdapter_StatMissing(t *testing.T) {
	info, err := New().Stat(context.Background(), filepath.Join(t.TempDir(), "nope"))

	require.NoError(t, err)
	assert.False(t, info.Exists)
}

func TestAdapter_ReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	_, err := New().Read(context.Background(), path)

	assert.ErrorIs(t, err, port.ErrFileIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var fileErr *port.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "read", fileErr.Op)
	assert.Equal(t, path, fileErr.Path)
}

func TestAdapter_StatDirectory(t *testing.T) {
	_, err := New().Stat(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, port.ErrFileIO)
}

func TestAdapter_Backup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	a := New()

	t.Run("missing file has no backup", func(t *testing.T) {
		backup, err := a.Backup(ctx, path)
		require.NoError(t, err)
		assert.Empty(t, backup)
	})

	t.Run("single backup is replaced each time", func(t *testing.T) {
		writeFile(t, path, "one\n", 0o600)
		backup, err := a.Backup(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path+".bak", backup)

		writeFile(t, path, "two\n", 0o600)
		_, err = a.Backup(ctx, path)
		require.NoError(t, err)

		data, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Equal(t, "two\n", string(data))

		info, err := os.Stat(backup)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2, "only the file and its backup")
	})
}

func TestAdapter_WriteAtomic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New()

	t.Run("replaces content and keeps permissions", func(t *testing.T) {
		path := filepath.Join(dir, "config")
		writeFile(t, path, "old\n", 0o600)

		require.NoError(t, a.WriteAtomic(ctx, path, []byte("new\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(dir, "ghostty", "nested", "config")

		require.NoError(t, a.WriteAtomic(ctx, path, []byte("font-size = 12\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "font-size = 12\n", string(data))
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		sub := filepath.Join(dir, "clean")
		path := filepath.Join(sub, "config")
		require.NoError(t, a.WriteAtomic(ctx, path, []byte("a\n")))
		require.NoError(t, a.WriteAtomic(ctx, path, []byte("b\n")))

		entries, err := os.ReadDir(sub)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "config", entries[0].Name())
	})

	t.Run("failure keeps the original", func(t *testing.T) {
		path := filepath.Join(dir, "target-dir")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

		err := a.WriteAtomic(ctx, path, []byte("x"))

		assert.ErrorIs(t, err, port.ErrFileIO)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := a.WriteAtomic(cctx, filepath.Join(dir, "never"), []byte("x"))

		assert.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(filepath.Join(dir, "never"))
		assert.ErrorIs(t, statErr, fs.ErrNotExist)
	})
}

func TestAdapter_SymlinkedConfigStaysALink(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New()

	target := filepath.Join(dir, "dotfiles-config")
	writeFile(t, target, "font-size = 12\n", 0o600)
	link := filepath.Join(dir, "config")
	require.NoError(t, os.Symlink("dotfiles-config", link))

	backup, err := a.Backup(ctx, link)
	require.NoError(t, err)
	require.NoError(t, a.WriteAtomic(ctx, link, []byte("font-size = 16\n")))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, fs.ModeSymlink, info.Mode().Type())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "font-size = 16\n", string(data))

	assert.Equal(t, link+BackupSuffix, backup)
	data, err = os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "font-size = 12\n", string(data))

	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temp files left behind")
}

func TestAdapter_BackupThroughSymlink(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New()

	path := filepath.Join(dir, "config")
	writeFile(t, path, "a\n", 0o644)
	realBackup := filepath.Join(dir, "kept.bak")
	writeFile(t, realBackup, "old\n", 0o644)
	require.NoError(t, os.Symlink(realBackup, BackupPath(path)))

	_, err := a.Backup(ctx, path)
	require.NoError(t, err)

	info, err := os.Lstat(BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, fs.ModeSymlink, info.Mode().Type())
	data, err := os.ReadFile(realBackup)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
}
