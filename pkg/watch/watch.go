// Package watch monitors an ontology directory and triggers re-analysis
// when its contents change.
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"
)

// DefaultDebounce is how long the watcher waits after the last filesystem
// event before invoking the callback, so bursts of writes coalesce into one
// re-analysis.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a directory tree and invokes a callback after changes.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func()

	watcher *fsnotify.Watcher
	stop    chan struct{}
	done    chan struct{}
}

// New creates a watcher over dir. A non-positive debounce falls back to
// DefaultDebounce.
func New(dir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start registers the directory tree with fsnotify and begins dispatching.
// Newly created subdirectories are added to the watch as they appear.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher

	if err := w.addTree(w.dir); err != nil {
		watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop terminates the dispatch loop and releases the watcher. It blocks
// until the loop has exited.
func (w *Watcher) Stop() {
	if w.watcher == nil {
		return
	}
	close(w.stop)
	<-w.done
	w.watcher.Close()
}

// addTree walks dir and registers every subdirectory.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// loop coalesces events with a debounce timer and invokes the callback.
func (w *Watcher) loop() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return

		case event := <-w.watcher.Events:
			if event.Op&fsnotify.Create != 0 {
				// New directories must be registered to keep the
				// whole tree covered.
				_ = w.addTree(event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.onChange()

		case <-w.watcher.Errors:
			// Watch errors are transient; the next event re-arms the timer.
		}
	}
}
