// Package reload delivers best-effort reload signals to running desktop
// processes after a theme build. Signals are fire-and-forget: a failure is
// a warning, never a fatal error, and consistency between theme files and
// process state is eventual.
package reload

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/types"
)

// Dispatcher signals the compositor and status bar through an injected
// ProcessSignaler.
type Dispatcher struct {
	signaler types.ProcessSignaler
	logger   zerolog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(signaler types.ProcessSignaler) *Dispatcher {
	return &Dispatcher{
		signaler: signaler,
		logger:   logging.GetLogger("theme.reload"),
	}
}

// Dispatch asks the compositor to reload and the status bar to refresh.
// It returns human-readable warnings for anything that did not respond.
func (d *Dispatcher) Dispatch(ctx context.Context) []string {
	var warnings []string

	if err := d.signaler.ReloadCompositor(ctx); err != nil {
		d.logger.Warn().Err(err).Msg("compositor reload failed")
		warnings = append(warnings, "compositor reload failed: "+err.Error())
	}

	running, err := d.signaler.RefreshStatusBar(ctx)
	switch {
	case err != nil:
		d.logger.Warn().Err(err).Msg("status bar refresh failed")
		warnings = append(warnings, "status bar refresh failed: "+err.Error())
	case !running:
		d.logger.Debug().Msg("status bar not running, skipped")
	}

	return warnings
}
