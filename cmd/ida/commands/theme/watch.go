package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/style"
	"github.com/idadots/ida/pkg/theme"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: MsgWatchShort,
		Long:  MsgWatchLong,
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}

	cmd.Flags().String("wallpaper", "", "Path to the wallpaper image")
	cmd.Flags().Bool("no-reload", false, "Skip signaling the compositor and status bar")
	_ = cmd.MarkFlagRequired("wallpaper")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return err
	}
	wallpaper, _ := cmd.Flags().GetString("wallpaper")
	noReload, _ := cmd.Flags().GetBool("no-reload")

	out := cmd.OutOrStdout()
	logger := logging.GetLogger("cmd.theme.watch")

	onChange := func(path string) {
		if err := buildOnce(cmd, rt, path, noReload, out); err != nil {
			// a failed build must not kill the watcher; the next write
			// gets another chance
			logger.Error().Err(err).Msg("theme build failed")
			fmt.Fprintln(out, style.ErrorStyle.Render("build failed: ")+err.Error())
		}
	}

	return theme.Watch(cmd.Context(), wallpaper, rt.Config.Theme.WatchDebounce(), onChange)
}
