// Package fswatch watches the catalog data directory for fixture changes
// using github.com/fsnotify/fsnotify. Events for non-JSON files are
// filtered out and rapid bursts are debounced (editors often trigger
// multiple writes per save).
package fswatch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses duplicate events for the same file.
const debounceInterval = 100 * time.Millisecond

// Watcher monitors a single directory for JSON fixture changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	mu      sync.Mutex
	stopped bool
}

// New creates a watcher. Call Watch to start it and Close to stop.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fw: fw}, nil
}

// Watch starts monitoring dir. onChange is called with the absolute path
// of each changed .json file, at most once per debounce interval.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := w.fw.Add(absDir); err != nil {
		return err
	}

	lastEvent := make(map[string]time.Time)
	var dmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}
				if strings.ToLower(filepath.Ext(event.Name)) != ".json" {
					continue
				}

				dmu.Lock()
				now := time.Now()
				if last, seen := lastEvent[event.Name]; seen && now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				lastEvent[event.Name] = now
				dmu.Unlock()

				onChange(event.Name)
			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	return w.fw.Close()
}
