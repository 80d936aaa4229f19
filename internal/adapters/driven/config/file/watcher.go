package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/placehold/internal/logger"
)

// Watcher calls a function whenever the config file is written or recreated.
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file are still noticed.
type Watcher struct {
	path     string
	onChange func()
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
	}
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	logger.Debug("Watching %s for changes", w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				logger.Info("Config changed (%s), reloading", event.Op)
				w.onChange()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher error: %v", err)
		}
	}
}

// handleEvent reports whether an event should trigger a reload.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
