package reload

import (
	"context"
	"os/exec"

	"github.com/idadots/ida/pkg/errors"
)

// Process names for the default Hyprland + Waybar desktop.
const (
	compositorCtl = "hyprctl"
	statusBarName = "waybar"
	refreshSignal = "-USR2"
)

// ExecSignaler is the production ProcessSignaler. It shells out to the
// desktop's own control tools; ida never manages these processes itself.
type ExecSignaler struct{}

// ReloadCompositor runs `hyprctl reload`.
func (ExecSignaler) ReloadCompositor(ctx context.Context) error {
	if _, err := exec.LookPath(compositorCtl); err != nil {
		return errors.Newf(errors.ErrToolMissing, "%s not found on PATH", compositorCtl)
	}
	if err := exec.CommandContext(ctx, compositorCtl, "reload").Run(); err != nil {
		return errors.Wrapf(err, errors.ErrToolMissing, "%s reload failed", compositorCtl)
	}
	return nil
}

// RefreshStatusBar sends waybar its SIGUSR2 refresh signal, preferred over a
// kill-and-relaunch to avoid flicker. Returns (false, nil) when waybar is
// not running.
func (ExecSignaler) RefreshStatusBar(ctx context.Context) (bool, error) {
	if err := exec.CommandContext(ctx, "pgrep", "-x", statusBarName).Run(); err != nil {
		// no such process (or pgrep missing); either way nothing to signal
		return false, nil
	}
	if err := exec.CommandContext(ctx, "pkill", refreshSignal, "-x", statusBarName).Run(); err != nil {
		return true, errors.Wrapf(err, errors.ErrToolMissing, "signaling %s failed", statusBarName)
	}
	return true, nil
}
