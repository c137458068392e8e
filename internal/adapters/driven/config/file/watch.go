package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/fraction/internal/core/ports/driven"
	"github.com/custodia-labs/fraction/internal/logger"
)

// Ensure ConfigStore implements the watcher interface.
var _ driven.ConfigWatcher = (*ConfigStore)(nil)

// Watch reloads the store whenever config.toml changes on disk and signals
// on the returned channel after each successful reload. Bursts of events
// collapse into a single pending signal. The channel is closed when ctx is
// done.
//
// The directory is watched rather than the file because editors and Save
// may replace the file instead of writing it in place.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(s.filePath), err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.isConfigEvent(ev) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("Reloading %s: %v", s.filePath, err)
					continue
				}
				logger.Debug("Reloaded %s after %s", s.filePath, ev.Op)
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher: %v", err)
			}
		}
	}()

	return changes, nil
}

// isConfigEvent reports whether ev changes the contents of config.toml.
func (s *ConfigStore) isConfigEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(s.filePath) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
