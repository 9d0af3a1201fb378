package linker

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/types"
)

// TreeOptions configures one tree-link pass.
type TreeOptions struct {
	// Skip names immediate children that are recorded as skipped without
	// any filesystem inspection or mutation.
	Skip map[string]bool

	// ScriptsOnly restricts the pass to direct files that pass the
	// executability test; subdirectories are skipped.
	ScriptsOnly bool

	// FishDir names the one subdirectory whose dynamically-managed file
	// (FishVariablesFile) must survive the directory relink as a real file.
	// Empty disables the exception.
	FishDir string

	// FishVariablesFile is the file preserved across the FishDir relink.
	FishVariablesFile string

	// OnOutcome, when set, receives every per-item outcome as it happens.
	// The CLI uses it for status lines.
	OnOutcome func(types.LinkOutcome)
}

// LinkTree enumerates the immediate children of sourceDir and applies the
// engine to each (child, targetDir/name) pair. Each subdirectory is one unit
// to link; there is no recursion into its contents.
//
// A missing source for one entry does not abort the pass; genuine filesystem
// failures do, since silent partial success would be indistinguishable from
// a completed run.
func (e *Engine) LinkTree(sourceDir, targetDir string, opts TreeOptions) (types.TreeStats, error) {
	logger := logging.GetLogger("linker.tree")
	var stats types.TreeStats

	entries, err := e.fs.ReadDir(sourceDir)
	if err != nil {
		return stats, errors.Wrapf(err, errors.ErrFilesystem, "cannot read source dir %s", sourceDir)
	}

	for _, entry := range entries {
		name := entry.Name()
		source := filepath.Join(sourceDir, name)
		target := filepath.Join(targetDir, name)

		if opts.Skip[name] {
			stats.Skipped++
			e.report(opts, types.LinkOutcome{
				Source: source,
				Target: target,
				Action: types.ActionSkipExisting,
				DryRun: e.dryRun,
			})
			continue
		}

		if opts.ScriptsOnly {
			if entry.IsDir() || !e.isExecutableScript(source) {
				stats.Skipped++
				e.report(opts, types.LinkOutcome{
					Source: source,
					Target: target,
					Action: types.ActionSkipExisting,
					DryRun: e.dryRun,
				})
				continue
			}
		}

		var outcome types.LinkOutcome
		if !opts.ScriptsOnly && opts.FishDir != "" && name == opts.FishDir {
			outcome = e.linkFishDir(source, target, opts.FishVariablesFile)
		} else {
			outcome = e.Apply(source, target)
		}

		e.report(opts, outcome)

		if outcome.Err != nil {
			stats.Errors++
			if errors.IsErrorCode(outcome.Err, errors.ErrSourceMissing) {
				// fatal for this one link only
				logger.Warn().Str("source", source).Msg("source missing, continuing")
				continue
			}
			return stats, outcome.Err
		}

		switch outcome.Action {
		case types.ActionSkipExisting:
			stats.Skipped++
		case types.ActionBackupThenLink:
			stats.Linked++
			stats.Backups++
		default:
			stats.Linked++
		}
	}

	logger.Info().
		Str("source", sourceDir).
		Int("linked", stats.Linked).
		Int("skipped", stats.Skipped).
		Int("backups", stats.Backups).
		Int("errors", stats.Errors).
		Msg("tree link pass complete")

	return stats, nil
}

// linkFishDir relinks the fish config directory while keeping its
// dynamically-managed variables file a real file. fish rewrites that file at
// runtime, so it must never become a symlink into the repository.
func (e *Engine) linkFishDir(source, target, varsFile string) types.LinkOutcome {
	var preserved []byte
	havePreserved := false

	// Only a live real directory needs the dance; a target that is already
	// a correct symlink (or absent) has nothing to preserve.
	if varsFile != "" {
		if info, err := e.fs.Lstat(target); err == nil && info.IsDir() && info.Mode()&os.ModeSymlink == 0 {
			varsPath := filepath.Join(target, varsFile)
			if data, err := e.fs.ReadFile(varsPath); err == nil {
				preserved = data
				havePreserved = true
			}
		}
	}

	outcome := e.Apply(source, target)
	if outcome.Err != nil || e.dryRun || !outcome.Action.Mutates() {
		return outcome
	}

	if havePreserved {
		varsPath := filepath.Join(target, varsFile)
		// a symlinked variables file inside the repo would shadow the copy
		if info, err := e.fs.Lstat(varsPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
			if err := e.fs.Remove(varsPath); err != nil {
				outcome.Err = errors.Wrapf(err, errors.ErrFilesystem, "cannot remove symlinked %s", varsPath)
				return outcome
			}
		}
		if err := e.fs.WriteFile(varsPath, preserved, 0644); err != nil {
			outcome.Err = errors.Wrapf(err, errors.ErrFilesystem, "cannot restore %s", varsPath)
			return outcome
		}
		e.logger.Info().Str("path", varsPath).Msg("preserved fish variables across relink")
	}

	return outcome
}

// isExecutableScript reports whether path has an executable mode bit or
// begins with a #! interpreter line.
func (e *Engine) isExecutableScript(path string) bool {
	info, err := e.fs.Stat(path)
	if err != nil {
		return false
	}
	if info.Mode().Perm()&0111 != 0 {
		return true
	}
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.HasPrefix(data, []byte("#!"))
}

func (e *Engine) report(opts TreeOptions, outcome types.LinkOutcome) {
	if opts.OnOutcome != nil {
		opts.OnOutcome(outcome)
	}
}
