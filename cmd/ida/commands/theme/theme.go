package theme

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the theme command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "theme",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
	}

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}
