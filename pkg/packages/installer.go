package packages

import (
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/types"
)

// managerArgs maps a manager name to the argv prefix that installs packages
// non-interactively. Package names are appended.
var managerArgs = map[string][]string{
	"pacman":  {"sudo", "pacman", "-S", "--needed", "--noconfirm"},
	"yay":     {"yay", "-S", "--needed", "--noconfirm"},
	"apt":     {"sudo", "apt-get", "install", "-y"},
	"flatpak": {"flatpak", "install", "-y"},
}

// ExecInstaller is the real PackageInstaller: it shells out to the manager
// and surfaces only the exit status.
type ExecInstaller struct {
	logger zerolog.Logger
}

// NewExecInstaller returns an installer backed by os/exec.
func NewExecInstaller() *ExecInstaller {
	return &ExecInstaller{logger: logging.GetLogger("packages.exec")}
}

// Available reports whether the manager is known and its binary resolves.
func (e *ExecInstaller) Available(manager string) bool {
	args, ok := managerArgs[manager]
	if !ok {
		return false
	}
	_, err := exec.LookPath(args[0])
	return err == nil
}

// Install invokes the manager once with the full package list. The manager's
// own output goes straight to the terminal.
func (e *ExecInstaller) Install(ctx context.Context, manager string, pkgs []string) error {
	args, ok := managerArgs[manager]
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unknown package manager: %s", manager)
	}
	if len(pkgs) == 0 {
		return nil
	}

	argv := append(append([]string{}, args...), pkgs...)
	e.logger.Info().Str("manager", manager).Int("packages", len(pkgs)).Msg("running package manager")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrToolMissing, "%s failed", manager)
	}
	return nil
}

// Sync installs every group in the manifest through the installer, skipping
// managers that are not available on this machine. It returns the names of
// the skipped managers.
func Sync(ctx context.Context, installer types.PackageInstaller, m *Manifest) ([]string, error) {
	var skipped []string
	for _, name := range m.ManagerNames() {
		group := m.Managers[name]
		if len(group.Packages) == 0 {
			continue
		}
		if !installer.Available(name) {
			skipped = append(skipped, name)
			continue
		}
		if err := installer.Install(ctx, name, group.Packages); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
