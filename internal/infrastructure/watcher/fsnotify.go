// Package watcher reports external changes to a config file.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/logging"
)

// DefaultDebounce collapses the burst of events an editor produces on save.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("watcher closed")

// FSNotifyWatcher implements port.FileWatcher with fsnotify.
// It watches the parent directory so that atomic replacements, which swap the
// file's inode, keep being reported.
type FSNotifyWatcher struct {
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	closed  bool
	done    chan struct{}
}

var _ port.FileWatcher = (*FSNotifyWatcher)(nil)

// New creates a watcher. A zero debounce uses DefaultDebounce.
func New(debounce time.Duration) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FSNotifyWatcher{debounce: debounce, done: make(chan struct{})}
}

// Watch starts reporting changes to path. It returns once the watch is set
// up; events are delivered on a background goroutine until ctx is done or
// Close is called. Only one path can be watched per watcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, path string, onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.watcher != nil {
		return fmt.Errorf("already watching a file")
	}

	if onChange == nil {
		return fmt.Errorf("onChange callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	w.watcher = fw

	log := logging.FromContext(ctx)
	log.Debug().Str("path", abs).Dur("debounce", w.debounce).Msg("watching config file")

	go w.loop(ctx, fw, abs, onChange)
	return nil
}

func (w *FSNotifyWatcher) loop(ctx context.Context, fw *fsnotify.Watcher, path string, onChange func()) {
	log := logging.FromContext(ctx)
	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case <-w.done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || event.Op&relevant == 0 {
				continue
			}
			log.Trace().Str("op", event.Op.String()).Str("file", event.Name).Msg("fsnotify event")
			w.schedule(onChange)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// schedule restarts the debounce timer.
func (w *FSNotifyWatcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, onChange)
}

// Close stops watching. It is safe to call more than once.
func (w *FSNotifyWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
