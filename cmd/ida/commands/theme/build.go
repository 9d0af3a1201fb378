package theme

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/style"
	"github.com/idadots/ida/pkg/theme"
	"github.com/idadots/ida/pkg/theme/reload"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE:    runBuild,
	}

	cmd.Flags().String("wallpaper", "", "Path to the wallpaper image")
	cmd.Flags().Bool("no-reload", false, "Skip signaling the compositor and status bar")
	_ = cmd.MarkFlagRequired("wallpaper")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return err
	}
	wallpaper, _ := cmd.Flags().GetString("wallpaper")
	noReload, _ := cmd.Flags().GetBool("no-reload")

	out := cmd.OutOrStdout()
	if err := buildOnce(cmd, rt, wallpaper, noReload, out); err != nil {
		return err
	}
	return nil
}

// buildOnce runs one full pipeline pass: identity, render, reload.
func buildOnce(cmd *cobra.Command, rt *runtime.Runtime, wallpaper string, noReload bool, out io.Writer) error {
	identity, err := theme.DeriveIdentity(rt.FS, theme.SHA256Hasher{}, wallpaper)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "theme "+style.TitleStyle.Render(identity))

	builder := theme.NewBuilder(rt.FS, rt.Paths, rt.Config.Theme.SemanticKeys, identity)
	if err := builder.Build(); err != nil {
		return err
	}
	for _, w := range builder.Warnings {
		fmt.Fprintln(out, style.WarningStyle.Render("warning: ")+w)
	}

	if noReload {
		return nil
	}
	dispatcher := reload.NewDispatcher(reload.ExecSignaler{})
	for _, w := range dispatcher.Dispatch(cmd.Context()) {
		fmt.Fprintln(out, style.WarningStyle.Render("warning: ")+w)
	}
	return nil
}
