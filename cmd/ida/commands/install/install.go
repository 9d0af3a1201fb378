package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/install"
	"github.com/idadots/ida/pkg/style"
	"github.com/idadots/ida/pkg/types"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    run,
	}

	cmd.Flags().Bool("safe", false, "Skip entries whose target already exists")
	cmd.Flags().Bool("force", false, "Delete existing targets instead of backing them up")
	cmd.MarkFlagsMutuallyExclusive("safe", "force")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if safe, _ := cmd.Flags().GetBool("safe"); safe {
		overrides["install.mode"] = string(types.ModeSafe)
	}
	if force, _ := cmd.Flags().GetBool("force"); force {
		overrides["install.mode"] = string(types.ModeForce)
	}

	rt, err := runtime.New(cmd, overrides)
	if err != nil {
		return err
	}
	mode, err := rt.Config.Install.ParsedMode()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rt.Paths.UsedFallback() {
		fmt.Fprintln(out, style.MutedStyle.Render("IDA_ROOT not set, using "+rt.Paths.RepoRoot()))
	}

	orch := install.New(rt.FS, rt.Paths, rt.Config, mode, rt.DryRun)
	orch.OnOutcome = func(outcome types.LinkOutcome) {
		fmt.Fprintln(out, style.RenderOutcome(outcome))
	}

	fixed, err := orch.FixPermissions()
	if err != nil {
		return err
	}
	if fixed > 0 {
		fmt.Fprintf(out, "made %d script(s) executable\n", fixed)
	}

	stats, err := orch.Run()
	fmt.Fprintln(out, style.RenderSummary(stats, rt.DryRun))
	if stats.Backups > 0 && !rt.DryRun {
		fmt.Fprintln(out, style.MutedStyle.Render("backups in "+orch.BackupSessionDir()))
	}
	if err != nil {
		return err
	}
	if stats.Errors > 0 {
		return fmt.Errorf("%d item(s) failed", stats.Errors)
	}
	return nil
}
