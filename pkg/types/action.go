package types

// Action is the resolution the symlink engine picks for one (source, target)
// pair under the active mode.
type Action string

const (
	// ActionNoOp means the target is already a correct symlink to the source.
	ActionNoOp Action = "noop"

	// ActionCreateLink means the target is absent and a link will be created.
	ActionCreateLink Action = "link"

	// ActionSkipExisting means the target exists and safe mode leaves it alone.
	ActionSkipExisting Action = "skip"

	// ActionBackupThenLink means the target exists and will be displaced into
	// the backup store before linking.
	ActionBackupThenLink Action = "backup"

	// ActionDeleteThenLink means the target exists and force mode removes it
	// before linking.
	ActionDeleteThenLink Action = "delete"
)

// Mutates reports whether applying the action touches the filesystem.
func (a Action) Mutates() bool {
	return a != ActionNoOp && a != ActionSkipExisting
}

// LinkOutcome is the per-item result reported back to the caller after the
// engine applied (or, under dry-run, would have applied) an action.
type LinkOutcome struct {
	Source     string
	Target     string
	Action     Action
	BackupPath string // set when Action is ActionBackupThenLink
	DryRun     bool
	Err        error
}

// TreeStats counts what a tree-link pass did.
type TreeStats struct {
	Linked  int
	Skipped int
	Backups int
	Errors  int
}

// Add accumulates another stats value, used when the orchestrator sums the
// scripts and config passes.
func (s *TreeStats) Add(o TreeStats) {
	s.Linked += o.Linked
	s.Skipped += o.Skipped
	s.Backups += o.Backups
	s.Errors += o.Errors
}
