// Package install sequences the install flow: target directory creation,
// the scripts and config tree-link passes, the shebang permission fixup,
// and the non-mutating validation pass.
package install

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/backup"
	"github.com/idadots/ida/pkg/config"
	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/linker"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/paths"
	"github.com/idadots/ida/pkg/types"
)

// Orchestrator runs the install flow. All collaborators are injected; the
// orchestrator itself holds no hidden state beyond the per-run engine.
type Orchestrator struct {
	fs     types.FS
	paths  paths.Paths
	cfg    *config.Config
	engine *linker.Engine
	store  *backup.Store
	dryRun bool
	logger zerolog.Logger

	// OnOutcome receives every per-item link outcome, for status lines.
	OnOutcome func(types.LinkOutcome)
}

// New creates an Orchestrator for one run. mode and dryRun are fixed for
// the run's duration.
func New(fsys types.FS, p paths.Paths, cfg *config.Config, mode types.Mode, dryRun bool) *Orchestrator {
	store := backup.NewStore(fsys, p.BackupRoot())
	return &Orchestrator{
		fs:     fsys,
		paths:  p,
		cfg:    cfg,
		engine: linker.NewEngine(fsys, store, mode, dryRun),
		store:  store,
		dryRun: dryRun,
		logger: logging.GetLogger("install.orchestrator"),
	}
}

// BackupSessionDir exposes the run's backup session directory for summaries.
func (o *Orchestrator) BackupSessionDir() string {
	return o.store.SessionDir()
}

// Run executes the full install sequence and returns combined stats for the
// scripts and config passes.
func (o *Orchestrator) Run() (types.TreeStats, error) {
	defer logging.LogDuration(time.Now(), "install run")

	var total types.TreeStats

	if !o.dryRun {
		for _, dir := range []string{o.paths.ConfigTarget(), o.paths.BinTarget()} {
			if err := o.fs.MkdirAll(dir, 0755); err != nil {
				return total, errors.Wrapf(err, errors.ErrDirCreate, "cannot create target dir %s", dir)
			}
		}
	}

	scriptStats, err := o.engine.LinkTree(o.paths.ScriptsSource(), o.paths.BinTarget(), linker.TreeOptions{
		ScriptsOnly: true,
		OnOutcome:   o.OnOutcome,
	})
	total.Add(scriptStats)
	if err != nil {
		return total, err
	}

	configStats, err := o.engine.LinkTree(o.paths.ConfigSource(), o.paths.ConfigTarget(), linker.TreeOptions{
		Skip:              toSet(o.cfg.Install.Skip),
		FishDir:           o.cfg.Install.FishDir,
		FishVariablesFile: o.cfg.Install.FishVariablesFile,
		OnOutcome:         o.OnOutcome,
	})
	total.Add(configStats)
	if err != nil {
		return total, err
	}

	o.logger.Info().
		Int("linked", total.Linked).
		Int("skipped", total.Skipped).
		Int("backups", total.Backups).
		Int("errors", total.Errors).
		Msg("install run complete")

	return total, nil
}

// FixPermissions makes every shebang-bearing, still-non-executable direct
// file in the scripts source executable. Returns how many files changed.
func (o *Orchestrator) FixPermissions() (int, error) {
	entries, err := o.fs.ReadDir(o.paths.ScriptsSource())
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFilesystem, "cannot read scripts source %s", o.paths.ScriptsSource())
	}

	fixed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(o.paths.ScriptsSource(), entry.Name())

		info, err := o.fs.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0111 != 0 {
			continue
		}
		data, err := o.fs.ReadFile(path)
		if err != nil || !bytes.HasPrefix(data, []byte("#!")) {
			continue
		}

		if !o.dryRun {
			if err := o.fs.Chmod(path, info.Mode().Perm()|0755); err != nil {
				return fixed, errors.Wrapf(err, errors.ErrFilesystem, "cannot chmod %s", path)
			}
		}
		fixed++
		o.logger.Debug().Str("path", path).Msg("made script executable")
	}

	return fixed, nil
}

func toSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
