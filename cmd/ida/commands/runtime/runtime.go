// Package runtime assembles the shared collaborators every ida command
// needs: the real filesystem, resolved paths, and the layered config.
package runtime

import (
	"github.com/spf13/cobra"

	"github.com/idadots/ida/pkg/config"
	"github.com/idadots/ida/pkg/filesystem"
	"github.com/idadots/ida/pkg/paths"
	"github.com/idadots/ida/pkg/types"
)

// Runtime holds the per-invocation collaborators.
type Runtime struct {
	FS     types.FS
	Paths  paths.Paths
	Config *config.Config
	DryRun bool
}

// New resolves paths and loads config. overrides are dotted koanf keys
// (e.g. "install.mode") layered over the config file; commands derive them
// from their flags.
func New(cmd *cobra.Command, overrides map[string]interface{}) (*Runtime, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.ConfigFilePath(), overrides)
	if err != nil {
		return nil, err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return &Runtime{
		FS:     filesystem.NewOS(),
		Paths:  p,
		Config: cfg,
		DryRun: dryRun,
	}, nil
}
