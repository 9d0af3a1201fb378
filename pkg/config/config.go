// Package config loads ida's layered configuration: built-in defaults,
// the user's config.toml, then explicit CLI overrides. The result is a
// plain struct threaded through every operation; nothing below the CLI
// reads the process environment.
package config

import (
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// Config is ida's fully resolved configuration.
type Config struct {
	Install  InstallConfig  `koanf:"install" toml:"install"`
	Theme    ThemeConfig    `koanf:"theme" toml:"theme"`
	Packages PackagesConfig `koanf:"packages" toml:"packages"`
}

// InstallConfig configures the install/symlink flow.
type InstallConfig struct {
	Mode              string   `koanf:"mode" toml:"mode"`
	DryRun            bool     `koanf:"dry_run" toml:"dry_run"`
	Skip              []string `koanf:"skip" toml:"skip"`
	KeyScripts        []string `koanf:"key_scripts" toml:"key_scripts"`
	FishDir           string   `koanf:"fish_dir" toml:"fish_dir"`
	FishVariablesFile string   `koanf:"fish_variables_file" toml:"fish_variables_file"`
}

// ThemeConfig configures the theme pipeline.
type ThemeConfig struct {
	SemanticKeys    []string `koanf:"semantic_keys" toml:"semantic_keys"`
	WatchDebounceMs int      `koanf:"watch_debounce_ms" toml:"watch_debounce_ms"`
}

// PackagesConfig configures the package-manifest boundary.
type PackagesConfig struct {
	Manifest string `koanf:"manifest" toml:"manifest"`
}

// ParsedMode returns the install mode as a types.Mode.
func (c *InstallConfig) ParsedMode() (types.Mode, error) {
	return types.ParseMode(c.Mode)
}

// WatchDebounce returns the watch debounce window as a duration.
func (c *ThemeConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// Load builds the configuration from defaults, the user config file at
// configFilePath (skipped when absent), and finally the explicit overrides
// map (dotted koanf keys, e.g. "install.mode"). Overrides usually come from
// CLI flags.
func Load(configFilePath string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err == nil {
			if err := k.Load(file.Provider(configFilePath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFilePath)
			}
		}
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if _, err := types.ParseMode(cfg.Install.Mode); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid install.mode")
	}

	return &cfg, nil
}

// Default returns the built-in configuration with no file or overrides.
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		// the embedded defaults are compiled in; failing to parse them is a bug
		panic(err)
	}
	return cfg
}
