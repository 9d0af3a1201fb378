package status

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/idadots/ida/cmd/ida/commands/runtime"
	"github.com/idadots/ida/pkg/install"
	"github.com/idadots/ida/pkg/style"
	"github.com/idadots/ida/pkg/types"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(cmd, nil)
	if err != nil {
		return err
	}
	mode, err := rt.Config.Install.ParsedMode()
	if err != nil {
		return err
	}

	var lookPath types.LookPathFunc = func(name string) bool {
		_, err := exec.LookPath(name)
		return err == nil
	}

	orch := install.New(rt.FS, rt.Paths, rt.Config, mode, true)
	report, err := orch.Validate(lookPath)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), style.RenderReport(report))
	if report.Issues > 0 {
		return fmt.Errorf("%d issue(s) found", report.Issues)
	}
	return nil
}
