package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/peterbourgon/diskv/v3"
)

// ErrWatchUnsupported is returned by Watch for backends that cannot report
// changes.
var ErrWatchUnsupported = errors.New("store: backend does not support watching")

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventKeyChanged indicates the value stored under Key was written or
	// erased, typically by another process.
	EventKeyChanged EventType = iota

	// EventInvalidated signals a change that could not be attributed to a
	// single key; callers should reload everything.
	EventInvalidated
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watcher is implemented by backends able to stream change events.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Watch streams change events of kv until ctx is cancelled.
func Watch(ctx context.Context, kv KV) (<-chan Event, error) {
	w, ok := kv.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

// watchDelay is how long Watch waits for a burst of writes to settle before
// reporting it.
const watchDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Events are coalesced per
// key within watchDelay and dropped when the consumer falls behind. The
// channel is closed once ctx is done or the watcher fails.
func (p *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)
	go p.watch(ctx, watcher, dirs, events)
	return events, nil
}

func (p *Disk) watch(ctx context.Context, watcher *fsnotify.Watcher, dirs []string, events chan<- Event) {
	logger := slog.Default().With("store", "watch")
	defer close(events)
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Debug("close", "error", err)
		}
	}()

	watched := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		watched[dir] = true
	}

	var (
		pending     = map[string]bool{}
		invalidated bool
		timer       *time.Timer
		flush       <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	mark := func(key string) {
		if key == "" {
			invalidated = true
		} else {
			pending[key] = true
		}
		if timer == nil {
			timer = time.NewTimer(watchDelay)
			flush = timer.C
		}
	}
	emit := func(ev Event) {
		select {
		case events <- ev:
		default:
			logger.Debug("event dropped", "key", ev.Key)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-flush:
			timer, flush = nil, nil
			if invalidated {
				// A full reload covers every pending key.
				emit(Event{Type: EventInvalidated})
			} else {
				for key := range pending {
					emit(Event{Type: EventKeyChanged, Key: key})
				}
			}
			pending, invalidated = map[string]bool{}, false

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher error", "error", err)
			mark("")

		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if evt.Op&fsnotify.Create == fsnotify.Create {
				// The first chat of a trip creates its namespace directory.
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					dir := filepath.Clean(evt.Name)
					if !watched[dir] {
						if err := watcher.Add(dir); err != nil {
							logger.Debug("watch directory", "dir", dir, "error", err)
						} else {
							watched[dir] = true
						}
					}
					mark("")
					continue
				}
			}
			mark(p.keyForPath(evt.Name))
		}
	}
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// keyForPath derives the store key from a file path below the base path.
func (p *Disk) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	return pathToKeyTransform(&diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	})
}
