package genconfig

// Message constants
const (
	MsgShort = "Print the resolved configuration as TOML"
	MsgLong  = `The 'gen-config' command renders the configuration ida would run with:
built-in defaults layered with your config file. Use --write to create
the config file with these values as a starting point.`

	MsgExample = `  # Inspect the effective configuration
  ida gen-config

  # Show the built-in defaults only
  ida gen-config --defaults

  # Seed ~/.config/ida/config.toml with the defaults
  ida gen-config --write`
)
