package status

// Message constants
const (
	MsgShort = "Check the live environment against the repo"
	MsgLong  = `The 'status' command inspects your home directory without changing it:
  - Each config entry is reported as linked, conflict, or missing
  - Each key script is checked for its ~/.local/bin link and PATH visibility

The exit code is non-zero when any issue is found, so status works in
scripts and shell prompts.`

	MsgExample = `  # Report the environment's state
  ida status`
)
