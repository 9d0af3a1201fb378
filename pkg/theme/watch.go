package theme

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
)

// Watch observes the wallpaper path for writes and invokes onChange after
// the debounce window closes, coalescing rapid event bursts into one
// pipeline run. Each onChange call runs to completion before the next event
// is considered; overlapping theme builds are not possible from one watcher.
//
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, wallpaperPath string, debounce time.Duration, onChange func(string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot create filesystem watcher")
	}
	defer func() { _ = watcher.Close() }()

	// watch the parent so replace-by-rename (the common wallpaper-set
	// pattern) is still observed
	dir := filepath.Dir(wallpaperPath)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot watch %s", dir)
	}

	logger := logging.GetLogger("theme.watch")
	logger.Info().Str("path", wallpaperPath).Dur("debounce", debounce).Msg("watching wallpaper")

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(wallpaperPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("wallpaper event")
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			onChange(wallpaperPath)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		}
	}
}
