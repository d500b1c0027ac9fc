// Package watch reloads a payload file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/qrship/pkg/log"
)

// DefaultDelay is the quiet period after the last write before the file is
// read. Editors often write a file in several steps.
const DefaultDelay = 100 * time.Millisecond

// Handler receives the file contents after a change. A returned error is
// logged and watching continues.
type Handler func(contents []byte) error

// Watcher monitors one file via fsnotify on its parent directory, so files
// replaced by rename are still seen.
type Watcher struct {
	path    string
	delay   time.Duration
	handler Handler
	logger  log.Logger
	ready   chan struct{}

	mu       sync.Mutex
	debounce *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger for read and handler errors.
func WithLogger(logger log.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher for path. Call Run to start it.
func New(path string, handler Handler, opts ...Option) *Watcher {
	w := &Watcher{
		path:    filepath.Clean(path),
		delay:   DefaultDelay,
		handler: handler,
		logger:  log.NewNoopLogger(),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Ready is closed once the directory is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. It fails only if the watch cannot be
// established.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	close(w.ready)
	w.logger.Debug("watching payload file", log.String("path", w.path))

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

func (w *Watcher) reload() {
	b, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("read payload file", log.String("path", w.path), log.Err(err))
		return
	}
	if err := w.handler(b); err != nil {
		w.logger.Warn("reload payload", log.String("path", w.path), log.Err(err))
		return
	}
	w.logger.Info("payload reloaded", log.String("path", w.path), log.Int("bytes", len(b)))
}
