package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"confkit/pkg/logging"
)

// DefaultDebounce is how long Watch waits for further changes before
// reloading.
const DefaultDebounce = 250 * time.Millisecond

// ReloadEvent describes one reload triggered by Watch.
type ReloadEvent struct {
	ID    uuid.UUID
	Time  time.Time
	Paths []string // changed files
	Err   error    // reload failure; the previous content is kept
}

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce time.Duration
}

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// Watch reloads the store whenever one of its files changes, calling fn
// after each reload. Bursts of changes are coalesced. It blocks until ctx
// is done, then returns nil.
//
// Directories are watched rather than files so that editors replacing a
// file by rename are seen.
func (s *FileStore) Watch(ctx context.Context, fn func(ReloadEvent), opts ...WatchOption) error {
	cfg := &watchConfig{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(cfg)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(s.paths))
	dirs := make(map[string]bool)
	for _, p := range s.paths {
		targets[filepath.Clean(p)] = true
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logging.Debug("Watch", "Watching directory: %s", dir)
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(cfg.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if !targets[name] || event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("Watch", "%s: %s", event.Op, name)
			pending[name] = true
			timer.Reset(cfg.debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)

			ev := ReloadEvent{ID: uuid.New(), Time: time.Now(), Paths: changed}
			if ev.Err = s.ReloadContext(ctx); ev.Err != nil {
				logging.Error("Watch", ev.Err, "Reload %s failed", ev.ID)
			} else {
				logging.Info("Watch", "Reloaded store after changes to %v (%s)", changed, ev.ID)
			}
			if fn != nil {
				fn(ev)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error("Watch", err, "Filesystem watcher error")
		}
	}
}
