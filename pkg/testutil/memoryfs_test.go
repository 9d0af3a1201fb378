package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_WriteAndRead(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/home/u", 0755))
	require.NoError(t, m.WriteFile("/home/u/file.txt", []byte("hello"), 0644))

	data, err := m.ReadFile("/home/u/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := m.Stat("/home/u/file.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.False(t, info.IsDir())
}

func TestMemoryFS_SymlinkStatVsLstat(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/repo", 0755))
	require.NoError(t, m.WriteFile("/repo/conf", []byte("x"), 0644))
	require.NoError(t, m.MkdirAll("/home", 0755))
	require.NoError(t, m.Symlink("/repo/conf", "/home/conf"))

	// Stat follows the link
	info, err := m.Stat("/home/conf")
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size())

	// Lstat does not
	linfo, err := m.Lstat("/home/conf")
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&fs.ModeSymlink)

	dest, err := m.Readlink("/home/conf")
	require.NoError(t, err)
	assert.Equal(t, "/repo/conf", dest)
}

func TestMemoryFS_EvalSymlinksChain(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/real/dir", 0755))
	require.NoError(t, m.WriteFile("/real/dir/f", []byte("x"), 0644))
	require.NoError(t, m.Symlink("/real", "/alias"))
	require.NoError(t, m.Symlink("/alias/dir/f", "/short"))

	resolved, err := m.EvalSymlinks("/short")
	require.NoError(t, err)
	assert.Equal(t, "/real/dir/f", resolved)

	// a path through an intermediate dir symlink also canonicalizes
	resolved, err = m.EvalSymlinks("/alias/dir/f")
	require.NoError(t, err)
	assert.Equal(t, "/real/dir/f", resolved)
}

func TestMemoryFS_DanglingSymlink(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/home", 0755))
	require.NoError(t, m.Symlink("/nowhere", "/home/dangling"))

	_, err := m.Stat("/home/dangling")
	assert.Error(t, err)

	_, err = m.Lstat("/home/dangling")
	assert.NoError(t, err)
}

func TestMemoryFS_ReadDir(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/src/sub", 0755))
	require.NoError(t, m.WriteFile("/src/b.txt", []byte("b"), 0644))
	require.NoError(t, m.WriteFile("/src/a.txt", []byte("a"), 0644))
	require.NoError(t, m.WriteFile("/src/sub/nested", []byte("n"), 0644))

	entries, err := m.ReadDir("/src")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.Equal(t, "b.txt", entries[1].Name())
	assert.Equal(t, "sub", entries[2].Name())
	assert.True(t, entries[2].IsDir())
}

func TestMemoryFS_RenameMovesSubtree(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/a/dir", 0755))
	require.NoError(t, m.WriteFile("/a/dir/f", []byte("x"), 0644))
	require.NoError(t, m.MkdirAll("/b", 0755))

	require.NoError(t, m.Rename("/a/dir", "/b/dir"))

	assert.False(t, m.Exists("/a/dir"))
	data, err := m.ReadFile("/b/dir/f")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemoryFS_LinkThroughAliasedDir(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/real/dir", 0755))
	require.NoError(t, m.WriteFile("/real/dir/f", []byte("x"), 0644))
	require.NoError(t, m.Symlink("/real", "/alias"))
	require.NoError(t, m.Symlink("/alias/dir/f", "/short"))

	// the link destination itself crosses a symlinked directory
	info, err := m.Stat("/short")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	data, err := m.ReadFile("/short")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestMemoryFS_SymlinkCycleErrors(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.Symlink("/b", "/a"))
	require.NoError(t, m.Symlink("/a", "/b"))

	_, err := m.EvalSymlinks("/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many levels")
}

func TestMemoryFS_RemoveAll(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/x/y", 0755))
	require.NoError(t, m.WriteFile("/x/y/f", []byte("1"), 0644))

	require.NoError(t, m.RemoveAll("/x"))
	assert.False(t, m.Exists("/x"))
	assert.False(t, m.Exists("/x/y/f"))
}

func TestMemoryFS_InjectError(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/home", 0755))
	m.InjectError("/home/broken", fs.ErrPermission)

	err := m.WriteFile("/home/broken", []byte("x"), 0644)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestMemoryFS_Chmod(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/bin", 0755))
	require.NoError(t, m.WriteFile("/bin/tool", []byte("#!/bin/sh\n"), 0644))

	require.NoError(t, m.Chmod("/bin/tool", 0755))
	info, err := m.Stat("/bin/tool")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0755), info.Mode().Perm())
}
