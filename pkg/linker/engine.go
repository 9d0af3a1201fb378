package linker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/backup"
	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/types"
)

// Engine decides and applies link actions for single (source, target) pairs.
// Mode and dry-run are fixed for the lifetime of the engine, one per run.
type Engine struct {
	fs     types.FS
	store  *backup.Store
	mode   types.Mode
	dryRun bool
	logger zerolog.Logger
}

// NewEngine creates an Engine. store may only be nil when mode is not
// ModeDefault, since default mode displaces conflicts into the store.
func NewEngine(fsys types.FS, store *backup.Store, mode types.Mode, dryRun bool) *Engine {
	return &Engine{
		fs:     fsys,
		store:  store,
		mode:   mode,
		dryRun: dryRun,
		logger: logging.GetLogger("linker.engine"),
	}
}

// Mode returns the engine's install mode.
func (e *Engine) Mode() types.Mode { return e.mode }

// DryRun reports whether the engine suppresses filesystem mutation.
func (e *Engine) DryRun() bool { return e.dryRun }

// Resolve decides which action linking source to target requires. It never
// mutates the filesystem.
func (e *Engine) Resolve(source, target string) (types.Action, error) {
	// Existence, not type: a source that is itself a symlink is fine.
	if _, err := e.fs.Lstat(source); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrSourceMissing, "source does not exist: %s", source)
		}
		return "", errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect source %s", source)
	}

	info, err := e.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ActionCreateLink, nil
		}
		return "", errors.Wrapf(err, errors.ErrFilesystem, "cannot inspect target %s", target)
	}

	if info.Mode()&os.ModeSymlink != 0 && e.pointsToSource(source, target) {
		return types.ActionNoOp, nil
	}

	// Target exists as a file, directory, or symlink to something else.
	switch e.mode {
	case types.ModeSafe:
		return types.ActionSkipExisting, nil
	case types.ModeForce:
		return types.ActionDeleteThenLink, nil
	default:
		return types.ActionBackupThenLink, nil
	}
}

// pointsToSource reports whether target is a symlink whose canonical path
// equals the canonical source path. Both sides are resolved through any
// intermediate symlinks so an aliased path still counts as correct.
func (e *Engine) pointsToSource(source, target string) bool {
	resolvedTarget, err := e.fs.EvalSymlinks(target)
	if err != nil {
		// dangling or unresolvable: not correct
		return false
	}
	resolvedSource, err := e.fs.EvalSymlinks(source)
	if err != nil {
		return false
	}
	return resolvedTarget == resolvedSource
}

// Apply resolves the pair and performs the resulting action. Under dry-run
// it returns the would-be outcome without touching the filesystem; in
// particular the backup store is never invoked.
func (e *Engine) Apply(source, target string) types.LinkOutcome {
	outcome := types.LinkOutcome{Source: source, Target: target, DryRun: e.dryRun}

	action, err := e.Resolve(source, target)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Action = action

	e.logger.Debug().
		Str("source", source).
		Str("target", target).
		Str("action", string(action)).
		Bool("dryRun", e.dryRun).
		Msg("resolved link action")

	if e.dryRun || !action.Mutates() {
		return outcome
	}

	switch action {
	case types.ActionBackupThenLink:
		backupPath, err := e.store.Displace(target)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		outcome.BackupPath = backupPath
	case types.ActionDeleteThenLink:
		if err := e.fs.RemoveAll(target); err != nil {
			outcome.Err = errors.Wrapf(err, errors.ErrFilesystem, "cannot remove %s", target)
			return outcome
		}
	}

	if err := e.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", target)
		return outcome
	}

	if err := e.fs.Symlink(source, target); err != nil {
		outcome.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", target, source)
		return outcome
	}

	return outcome
}
