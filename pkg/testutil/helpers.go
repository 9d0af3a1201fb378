package testutil

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/idadots/ida/pkg/types"
)

// MustMkdirAll creates a directory tree or fails the test.
func MustMkdirAll(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	if err := fsys.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", path, err)
	}
}

// MustWriteFile writes a file (creating parents) or fails the test.
func MustWriteFile(t *testing.T, fsys types.FS, path, content string, perm fs.FileMode) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := fsys.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// MustSymlink creates a symlink or fails the test.
func MustSymlink(t *testing.T, fsys types.FS, oldname, newname string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(newname), 0755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(newname), err)
	}
	if err := fsys.Symlink(oldname, newname); err != nil {
		t.Fatalf("Symlink(%s -> %s): %v", newname, oldname, err)
	}
}

// RecorderSignaler implements types.ProcessSignaler and records calls.
type RecorderSignaler struct {
	CompositorReloads  int
	StatusBarRefreshes int

	CompositorErr error
	StatusBarErr  error
	BarRunning    bool
}

func (r *RecorderSignaler) ReloadCompositor(ctx context.Context) error {
	r.CompositorReloads++
	return r.CompositorErr
}

func (r *RecorderSignaler) RefreshStatusBar(ctx context.Context) (bool, error) {
	r.StatusBarRefreshes++
	return r.BarRunning, r.StatusBarErr
}

// RecorderInstaller implements types.PackageInstaller and records calls.
type RecorderInstaller struct {
	Calls []InstallCall
	Err   error

	// Missing lists managers that Available reports as absent.
	Missing map[string]bool
}

// InstallCall is one recorded Install invocation.
type InstallCall struct {
	Manager  string
	Packages []string
}

func (r *RecorderInstaller) Install(ctx context.Context, manager string, packages []string) error {
	r.Calls = append(r.Calls, InstallCall{Manager: manager, Packages: packages})
	return r.Err
}

func (r *RecorderInstaller) Available(manager string) bool {
	return !r.Missing[manager]
}

// FixedHasher implements types.ContentHasher with a canned digest.
type FixedHasher struct {
	Digest string
	Err    error
}

func (f *FixedHasher) HashFile(fsys types.FS, path string) (string, error) {
	return f.Digest, f.Err
}
