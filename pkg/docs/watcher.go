package docs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// WatcherConfig contains configuration for the docs tree watcher.
type WatcherConfig struct {
	// Root is the docs root directory to watch.
	Root string

	// DebounceInterval is the time to wait after a change before invoking
	// the callback, collapsing editor save storms into one notification
	// (default: 250ms).
	DebounceInterval time.Duration

	// RescanSchedule is a cron expression (or descriptor such as
	// "@every 1m") for periodic full rescans. fsnotify can miss events on
	// some platforms; the scheduled rescan is the backstop. Empty disables
	// the schedule.
	RescanSchedule string
}

// DefaultWatcherConfig returns the default watcher configuration for the
// given root.
func DefaultWatcherConfig(root string) *WatcherConfig {
	return &WatcherConfig{
		Root:             root,
		DebounceInterval: 250 * time.Millisecond,
		RescanSchedule:   "@every 1m",
	}
}

// Watcher observes the docs root for markdown changes. It is purely
// observational: the callback refreshes telemetry (file-count gauge);
// no document content is cached or invalidated.
type Watcher struct {
	config  *WatcherConfig
	watcher *fsnotify.Watcher
	cron    *cron.Cron
	logger  *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher over the configured docs root.
func NewWatcher(config *WatcherConfig, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		return nil, fmt.Errorf("watcher config is nil")
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 250 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Watch starts watching and blocks until the context is cancelled or Stop
// is called. onChange is invoked (debounced) after markdown files change
// and on every scheduled rescan tick.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.addTree(w.config.Root); err != nil {
		return fmt.Errorf("failed to watch docs root: %w", err)
	}

	if w.config.RescanSchedule != "" {
		w.cron = cron.New()
		if _, err := w.cron.AddFunc(w.config.RescanSchedule, onChange); err != nil {
			return fmt.Errorf("invalid rescan schedule %q: %w", w.config.RescanSchedule, err)
		}
		w.cron.Start()
		defer w.cron.Stop()
	}

	w.logger.Info("docs watcher started",
		"root", w.config.Root,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
		"rescan_schedule", w.config.RescanSchedule,
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("docs watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("docs watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			// New directories must be added so their files are observed.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if err := w.addTree(event.Name); err != nil {
					w.logger.Debug("could not watch new path", "path", event.Name, "error", err)
				}
			}
			if !w.shouldProcess(event) {
				continue
			}
			w.logger.Debug("docs change detected", "path", event.Name, "op", event.Op.String())
			w.trigger(onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("docs watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// trigger schedules onChange after the debounce interval, resetting the
// timer if a change is already pending.
func (w *Watcher) trigger(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.DebounceInterval, onChange)
}

// addTree registers dir and all non-hidden subdirectories with the
// fsnotify watcher. Non-directories are ignored.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && p != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if err := w.watcher.Add(p); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", p, err)
			}
		}
		return nil
	})
}

// shouldProcess filters events down to markdown content changes.
func (w *Watcher) shouldProcess(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return isMarkdown(event.Name)
}
