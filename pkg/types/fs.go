package types

import (
	"io/fs"
)

// FS is the filesystem interface required for ida operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// EvalSymlinks canonicalizes a path, following every symlink in it.
	// The symlink engine compares canonical forms so a target that reaches
	// the source through an intermediate link still counts as correct.
	EvalSymlinks(path string) (string, error)

	// Mutation
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}
