package packages

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/packages"
	"github.com/idadots/ida/pkg/style"
)

// NewCommand creates the packages command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE:  runList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		RunE:    runInstall,
	})

	return cmd
}

func loadManifest(cmd *cobra.Command) (*runtime.Runtime, *packages.Manifest, error) {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return nil, nil, err
	}
	path := filepath.Join(rt.Paths.RepoRoot(), rt.Config.Packages.Manifest)
	m, err := packages.LoadManifest(rt.FS, path)
	if err != nil {
		return nil, nil, err
	}
	return rt, m, nil
}

func runList(cmd *cobra.Command, args []string) error {
	_, m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range m.ManagerNames() {
		group := m.Managers[name]
		fmt.Fprintf(out, "%s (%d)\n", style.TitleStyle.Render(name), len(group.Packages))
		for _, pkg := range group.Packages {
			fmt.Fprintln(out, "  "+pkg)
		}
	}
	return nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	rt, m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rt.DryRun {
		fmt.Fprintln(out, style.MutedStyle.Render("dry run: would install"))
		return runList(cmd, args)
	}

	skipped, err := packages.Sync(cmd.Context(), packages.NewExecInstaller(), m)
	for _, name := range skipped {
		fmt.Fprintln(out, style.MutedStyle.Render("skipped "+name+" (not available)"))
	}
	return err
}
