package install

import (
	"os"
	"path/filepath"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// LinkState classifies a live config target during validation.
type LinkState string

const (
	// StateLinked means the target is a symlink (the expected state).
	StateLinked LinkState = "linked"

	// StateConflict means something exists at the target but it is not a
	// symlink; the repo entry is shadowed.
	StateConflict LinkState = "conflict"

	// StateMissing means nothing exists at the target.
	StateMissing LinkState = "missing"
)

// ConfigCheck is the validation result for one config source entry.
type ConfigCheck struct {
	Name   string
	Target string
	State  LinkState
}

// ScriptCheck is the validation result for one key script.
type ScriptCheck struct {
	Name   string
	Linked bool
	OnPath bool
}

// Report aggregates a validation pass. Issues counts conflicts, missing
// targets, and key scripts that are unlinked or undiscoverable.
type Report struct {
	Configs []ConfigCheck
	Scripts []ScriptCheck
	Issues  int
}

// Validate inspects the live environment against the config source and the
// configured key scripts. It never mutates state.
func (o *Orchestrator) Validate(lookPath types.LookPathFunc) (*Report, error) {
	report := &Report{}

	entries, err := o.fs.ReadDir(o.paths.ConfigSource())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "cannot read config source %s", o.paths.ConfigSource())
	}

	skip := toSet(o.cfg.Install.Skip)
	for _, entry := range entries {
		name := entry.Name()
		if skip[name] {
			continue
		}
		target := filepath.Join(o.paths.ConfigTarget(), name)

		check := ConfigCheck{Name: name, Target: target}
		info, err := o.fs.Lstat(target)
		switch {
		case err != nil:
			check.State = StateMissing
			report.Issues++
		case info.Mode()&os.ModeSymlink != 0:
			check.State = StateLinked
		default:
			check.State = StateConflict
			report.Issues++
		}
		report.Configs = append(report.Configs, check)
	}

	for _, name := range o.cfg.Install.KeyScripts {
		check := ScriptCheck{Name: name}

		linkPath := filepath.Join(o.paths.BinTarget(), name)
		if info, err := o.fs.Lstat(linkPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
			check.Linked = true
		}
		if lookPath != nil && lookPath(name) {
			check.OnPath = true
		}
		if !check.Linked || !check.OnPath {
			report.Issues++
		}
		report.Scripts = append(report.Scripts, check)
	}

	o.logger.Info().Int("issues", report.Issues).Msg("validation pass complete")
	return report, nil
}
