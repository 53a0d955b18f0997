package override

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long to wait for further writes before reloading.
// Editors and config-management tools often write a file several times
// in quick succession.
const debounceDelay = 500 * time.Millisecond

// Watch reloads the store whenever its file changes, until ctx is
// cancelled. The parent directory is watched rather than the file
// itself, so atomic rename-into-place updates are seen too.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	s.logger.Debug("Watching override file", slog.String("path", s.path))

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				// Drain a tick that fired between selects so Reset
				// cannot leave a stale one queued.
				if !timer.Stop() {
					select {
					case <-timerC:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := s.Reload(); err != nil {
				// Keep the previous rules and keep watching.
				s.logger.Warn("Failed to reload label overrides",
					slog.String("path", s.path),
					slog.String("error", err.Error()))
				continue
			}
			s.logger.Info("Reloaded label overrides",
				slog.String("path", s.path),
				slog.Int("rules", s.Len()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Override watcher error", slog.String("error", err.Error()))
		}
	}
}
