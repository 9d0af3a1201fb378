package packages

// Message constants
const (
	MsgShort = "List or install the repo's package manifest"
	MsgLong  = `The 'packages' commands read the repo's packages.yaml manifest, which
groups package names per OS package manager. Installing runs each
available manager once with its full list; managers absent from this
machine are skipped.`

	MsgListShort    = "List the manifest's packages per manager"
	MsgInstallShort = "Install every package group through its manager"

	MsgInstallExample = `  # Install everything the manifest names
  ida packages install`
)
