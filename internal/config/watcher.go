// ABOUTME: Mtime watcher for files edited outside pi-theme (settings.json, config.json)
// ABOUTME: Passive: the caller's poll loop invokes Check; changed paths go to onChange

package config

import (
	"os"
	"sync"
	"time"
)

// Watcher detects changes to a fixed set of files by comparing mtimes
// between calls to Check. It runs no goroutine of its own.
type Watcher struct {
	paths    []string
	onChange func(changed []string)

	mu     sync.Mutex
	mtimes map[string]time.Time
}

// NewWatcher snapshots paths and returns a watcher that calls onChange with
// the paths whose mtime changed, appeared, or disappeared since the
// previous check.
func NewWatcher(paths []string, onChange func(changed []string)) *Watcher {
	w := &Watcher{
		paths:    paths,
		onChange: onChange,
		mtimes:   make(map[string]time.Time),
	}
	w.snapshotLocked()
	return w
}

// Check polls once and reports changes to onChange. The callback runs
// outside the watcher's lock.
func (w *Watcher) Check() {
	if changed := w.poll(); len(changed) > 0 {
		w.onChange(changed)
	}
}

func (w *Watcher) poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	changed := w.checkLocked()
	if len(changed) > 0 {
		w.snapshotLocked()
	}
	return changed
}

// checkLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) checkLocked() []string {
	var changed []string
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		if err != nil {
			if existed {
				changed = append(changed, path)
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			changed = append(changed, path)
		}
	}
	return changed
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
