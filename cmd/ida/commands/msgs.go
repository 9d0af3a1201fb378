package commands

// Message constants
const (
	MsgRootShort = "A personal machine configuration manager"
	MsgRootLong  = `ida keeps one repo of config directories and scripts and materializes it
into your home directory with symlinks, so the repo stays the single
source of truth and git handles history.

It also drives the wallpaper theme pipeline: a wallpaper's content names
a cached theme, overrides recolor it, and templates render the
per-application color files.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
)
