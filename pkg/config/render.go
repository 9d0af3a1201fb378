package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/idadots/ida/pkg/errors"
)

// Render marshals a config back to TOML, for gen-config and diagnostics.
func Render(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render config")
	}
	return data, nil
}
