// Package watcher implements definitions-file watching for daemon hot-reload.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"go.trai.ch/zerr"

	"github.com/contribulate/dagster/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is how long the watcher waits after the last file
// event before firing the change callback. Editors often emit several events
// per save.
const DefaultDebounceWindow = 50 * time.Millisecond

// ErrWatcherClosed is returned when the underlying fsnotify channel closes
// before the watch context is done.
var ErrWatcherClosed = zerr.New("file watcher closed unexpectedly")

// Watcher observes a single definitions file using fsnotify. It watches the
// containing directory rather than the file itself so rename-replace saves
// (the common editor write strategy) keep being observed.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// New creates a Watcher debouncing change bursts over DefaultDebounceWindow.
func New(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger, window: DefaultDebounceWindow}
}

// Watch invokes onChange whenever path is written, created, or renamed,
// until ctx is done. Rapid event bursts within the debounce window collapse
// into a single callback.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsw.Close() }()

	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watch path"), "path", path)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(abs))
	}

	deb := NewDebouncer(w.window, onChange)
	defer deb.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if !w.relevant(event, abs) {
				continue
			}
			deb.Bump()
		case err, ok := <-fsw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			w.logger.Warn("file watcher error: " + err.Error())
		}
	}
}

// relevant reports whether event concerns the watched file.
func (w *Watcher) relevant(event fsnotify.Event, abs string) bool {
	if event.Name != abs {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
