package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/style"
	"github.com/idadots/ida/pkg/theme"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: MsgPreviewShort,
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}

	cmd.Flags().String("wallpaper", "", "Also apply that wallpaper's per-theme overrides")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return err
	}
	keys := rt.Config.Theme.SemanticKeys

	_, defaults, err := theme.LoadPalette(rt.FS, rt.Paths.CurrentThemeDir())
	if err != nil {
		return err
	}

	global, warns, err := theme.ParseOverrides(rt.FS, rt.Paths.GlobalOverridePath(), keys)
	if err != nil {
		return err
	}

	perTheme := map[string]string{}
	if wallpaper, _ := cmd.Flags().GetString("wallpaper"); wallpaper != "" {
		identity, err := theme.DeriveIdentity(rt.FS, theme.SHA256Hasher{}, wallpaper)
		if err != nil {
			return err
		}
		var tw []theme.ParseWarning
		perTheme, tw, err = theme.ParseOverrides(rt.FS, rt.Paths.ThemeOverridePath(identity), keys)
		if err != nil {
			return err
		}
		warns = append(warns, tw...)
	}

	colors, err := theme.ResolveColors(defaults, global, perTheme, keys)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range warns {
		fmt.Fprintln(out, style.WarningStyle.Render("warning: ")+w.String())
	}
	fmt.Fprintln(out, style.RenderSwatches(colors, keys))
	return nil
}
