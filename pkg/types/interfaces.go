package types

import "context"

// ContentHasher produces hex digests of file contents. The theme identity
// derivation consumes it so tests never hash real wallpapers.
type ContentHasher interface {
	// HashFile returns the lowercase hex digest of the file's bytes.
	HashFile(fsys FS, path string) (string, error)
}

// ProcessSignaler delivers best-effort reload signals to running desktop
// processes. Implementations shell out (hyprctl, pkill); failures are
// reported but callers treat them as warnings, not errors.
type ProcessSignaler interface {
	// ReloadCompositor asks the window manager to re-read its config.
	ReloadCompositor(ctx context.Context) error

	// RefreshStatusBar sends the status bar its lightweight refresh signal
	// if it is running. Returns (false, nil) when no process was found.
	RefreshStatusBar(ctx context.Context) (bool, error)
}

// LookPathFunc reports whether a command name resolves on the executable
// search path. The validation pass uses it for key-script discoverability.
type LookPathFunc func(name string) bool

// PackageInstaller installs a list of packages via a named OS package
// manager. ida never parses manager output; it only observes the exit error.
type PackageInstaller interface {
	Install(ctx context.Context, manager string, packages []string) error
	Available(manager string) bool
}
