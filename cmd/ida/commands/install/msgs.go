package install

// Message constants
const (
	MsgShort = "Link the repo's configs and scripts into $HOME"
	MsgLong  = `The 'install' command materializes the repo into your home directory:
  - Symlinks each config directory into ~/.config
  - Symlinks each executable script into ~/.local/bin
  - Makes shebang scripts executable first

Existing targets are handled per the conflict mode:
  default: the target is moved into the backup store, then linked
  --safe:  the target is left alone and the entry is skipped
  --force: the target is deleted, then linked (no backup)`

	MsgExample = `  # Install with backups for anything in the way
  ida install

  # Preview without touching the filesystem
  ida install --dry-run

  # Never displace existing files
  ida install --safe

  # Replace existing files without backups
  ida install --force`
)
