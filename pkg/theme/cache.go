package theme

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/paths"
	"github.com/idadots/ida/pkg/types"
)

// Cache manages the theme cache layout: the live "current" snapshot and the
// per-identity snapshot directories.
type Cache struct {
	fs     types.FS
	paths  paths.Paths
	logger zerolog.Logger
}

// NewCache creates a Cache over the configured theme cache root.
func NewCache(fsys types.FS, p paths.Paths) *Cache {
	return &Cache{
		fs:     fsys,
		paths:  p,
		logger: logging.GetLogger("theme.cache"),
	}
}

// EnsureThemeDir creates the per-identity directory if absent and seeds it
// with a copy of the current snapshot, so each identity's first appearance
// captures what was live at that moment. Returns whether it was created.
func (c *Cache) EnsureThemeDir(identity string) (bool, error) {
	dir := c.paths.ThemeDir(identity)

	if _, err := c.fs.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect theme dir %s", dir)
	}

	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create theme dir %s", dir)
	}

	if err := c.copySnapshot(c.paths.CurrentThemeDir(), dir); err != nil {
		return false, err
	}

	c.logger.Info().Str("identity", identity).Str("dir", dir).Msg("seeded theme dir from current snapshot")
	return true, nil
}

// WriteSnapshotFile writes a rendered file into both the current snapshot
// and the identity's snapshot directory.
func (c *Cache) WriteSnapshotFile(identity, name string, content []byte) error {
	for _, dir := range []string{c.paths.CurrentThemeDir(), c.paths.ThemeDir(identity)} {
		if err := c.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
		}
		path := filepath.Join(dir, name)
		if err := c.fs.WriteFile(path, content, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFilesystem, "cannot write %s", path)
		}
	}
	return nil
}

// copySnapshot copies the immediate files of src into dst. The snapshot
// directories are flat; subdirectories are not expected and are skipped.
func (c *Cache) copySnapshot(src, dst string) error {
	entries, err := c.fs.ReadDir(src)
	if err != nil {
		if os.IsNotExist(err) {
			// first ever run: no current snapshot to capture
			return nil
		}
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot read snapshot %s", src)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := c.fs.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return errors.Wrapf(err, errors.ErrFilesystem, "cannot read %s", entry.Name())
		}
		if err := c.fs.WriteFile(filepath.Join(dst, entry.Name()), data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrFilesystem, "cannot write %s", entry.Name())
		}
	}
	return nil
}
