// ============================================================================
// why - Sprachwerkzeuge
// ============================================================================
//
// Package:     watcher
// Description: Re-runs a handler when watched source files change
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/why/pkg/core/logging"
)

// DefaultDebounce is used when Config.Debounce is zero
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the path of a changed file
type Handler func(path string)

// Config configures a Watcher
type Config struct {
	// Paths are files or directories; directories are watched recursively
	Paths []string
	// Debounce drops repeated events for a file within this window
	Debounce time.Duration
	// Extensions limits events to these file extensions (default .why)
	Extensions []string
}

// Watcher watches files and directories for changes
type Watcher struct {
	cfg     Config
	handler Handler
	logger  *logging.Logger

	watcher *fsnotify.Watcher
	// files holds explicitly named files; their parent directory is watched
	files map[string]bool

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New creates a watcher. A nil logger discards log output.
func New(cfg Config, handler Handler, logger *logging.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".why"}
	}
	if logger == nil {
		logger = logging.Wrap(nil, "watcher")
	}
	return &Watcher{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		files:   make(map[string]bool),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start adds the watch roots and runs the event loop until ctx is done or
// Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher

	for _, p := range w.cfg.Paths {
		if err := w.addRoot(p); err != nil {
			w.watcher.Close()
			return err
		}
	}

	w.running = true
	w.logger.Info("Started watching", "paths", strings.Join(w.cfg.Paths, ","))

	go w.watchLoop(ctx)
	return nil
}

// addRoot watches a directory tree, or the parent directory of a file
func (w *Watcher) addRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if !info.IsDir() {
		abs, _ := filepath.Abs(path)
		w.files[abs] = true
		return w.watcher.Add(filepath.Dir(abs))
	}
	return w.addTree(path)
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", p, err)
		}
		return nil
	})
}

// watchLoop handles file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		w.watcher.Close()
		close(w.done)
	}()

	// Debounce map to prevent repeated runs for the same file
	debounce := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping watcher (context cancelled)")
			return

		case <-w.stopCh:
			w.logger.Info("Stopping watcher (stop signal)")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("Failed to watch new directory", "dir", event.Name, "error", err)
					}
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !w.matches(event.Name) {
				continue
			}

			if lastTime, exists := debounce[event.Name]; exists {
				if time.Since(lastTime) < w.cfg.Debounce {
					continue
				}
			}
			debounce[event.Name] = time.Now()

			w.logger.Debug("File changed", "file", event.Name, "op", event.Op.String())
			w.handler(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

// matches reports whether path is a file the handler should see
func (w *Watcher) matches(path string) bool {
	if len(w.files) > 0 {
		abs, _ := filepath.Abs(path)
		if w.files[abs] {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.cfg.Extensions {
		if ext == strings.ToLower(e) {
			return w.underDirectoryRoot(path)
		}
	}
	return false
}

// underDirectoryRoot excludes siblings of explicitly named files
func (w *Watcher) underDirectoryRoot(path string) bool {
	abs, _ := filepath.Abs(path)
	for _, root := range w.cfg.Paths {
		rootAbs, _ := filepath.Abs(root)
		if w.files[rootAbs] {
			continue
		}
		if rel, err := filepath.Rel(rootAbs, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

// Stop ends the event loop. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

// Done is closed when the event loop has exited
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Running reports whether the event loop is active
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
