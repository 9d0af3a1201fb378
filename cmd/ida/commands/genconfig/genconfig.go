package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/config"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	cmd.Flags().BoolP("write", "w", false, "Write to the config file instead of stdout")
	cmd.Flags().Bool("defaults", false, "Emit the built-in defaults instead of the resolved config")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return err
	}

	var data []byte
	if defaults, _ := cmd.Flags().GetBool("defaults"); defaults {
		data = []byte(config.GetDefaultConfigContent())
	} else {
		data, err = config.Render(rt.Config)
		if err != nil {
			return err
		}
	}

	if write, _ := cmd.Flags().GetBool("write"); write {
		path := rt.Paths.ConfigFilePath()
		if err := rt.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := rt.FS.WriteFile(path, data, 0644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote "+path)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
