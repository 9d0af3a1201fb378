// Package backup implements ida's append-only backup store. Files and
// directories displaced during an install run are moved intact into a
// per-run session directory under the backup root. Sessions are never
// pruned automatically.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/types"
)

// SessionTimestampFormat names session directories, one per run.
const SessionTimestampFormat = "20060102-150405"

// Store displaces existing targets into a timestamped session directory.
// The session timestamp is captured once at construction so every backup
// taken during one run lands in the same directory.
type Store struct {
	fs      types.FS
	root    string
	session string
	logger  zerolog.Logger
	now     func() time.Time
}

// NewStore creates a Store rooted at root. The session directory is created
// lazily on the first displacement.
func NewStore(fsys types.FS, root string) *Store {
	now := time.Now
	return &Store{
		fs:      fsys,
		root:    root,
		session: now().Format(SessionTimestampFormat),
		logger:  logging.GetLogger("backup.store"),
		now:     now,
	}
}

// NewStoreAt is NewStore with an injected clock, for tests.
func NewStoreAt(fsys types.FS, root string, now func() time.Time) *Store {
	return &Store{
		fs:      fsys,
		root:    root,
		session: now().Format(SessionTimestampFormat),
		logger:  logging.GetLogger("backup.store"),
		now:     now,
	}
}

// SessionDir returns this run's session directory path. The directory may
// not exist yet if nothing was displaced.
func (s *Store) SessionDir() string {
	return filepath.Join(s.root, s.session)
}

// Displace moves path into the session directory and returns the backup
// path. It is a no-op returning ("", nil) when path does not exist, unless
// path is itself a dangling symlink, which is still backed up. Same-named
// entries within one session are disambiguated with a nanosecond suffix and,
// should even that collide, a counter; an existing backup is never
// overwritten.
func (s *Store) Displace(path string) (string, error) {
	// Lstat so a dangling symlink at path still counts as present.
	if _, err := s.fs.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect %s", path)
	}

	sessionDir := s.SessionDir()
	if err := s.fs.MkdirAll(sessionDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create backup session %s", sessionDir)
	}

	backupPath, err := s.freeBackupPath(sessionDir, filepath.Base(path))
	if err != nil {
		return "", err
	}

	if err := s.fs.Rename(path, backupPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupMove, "cannot move %s to %s", path, backupPath)
	}

	s.logger.Info().
		Str("original", path).
		Str("backup", backupPath).
		Msg("displaced existing target")

	return backupPath, nil
}

// freeBackupPath picks a path under sessionDir that does not exist yet.
func (s *Store) freeBackupPath(sessionDir, base string) (string, error) {
	candidate := filepath.Join(sessionDir, base)
	if !s.exists(candidate) {
		return candidate, nil
	}

	// second item with the same basename in this session
	nano := s.now().Format("150405.000000000")
	candidate = filepath.Join(sessionDir, fmt.Sprintf("%s.%s", base, nano))
	if !s.exists(candidate) {
		return candidate, nil
	}

	for i := 1; i < 10000; i++ {
		c := filepath.Join(sessionDir, fmt.Sprintf("%s.%s.%d", base, nano, i))
		if !s.exists(c) {
			return c, nil
		}
	}
	return "", errors.Newf(errors.ErrBackupMove, "cannot find free backup path for %s in %s", base, sessionDir)
}

func (s *Store) exists(path string) bool {
	_, err := s.fs.Lstat(path)
	return err == nil
}
