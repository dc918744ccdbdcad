package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single caption file and invokes the callback once
// changes settle. Editors often replace files via rename, so the
// parent directory is watched and events are filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()

	fsWatcher *fsnotify.Watcher
	cancel    chan struct{}
}

// New starts watching the file. The callback runs on the watcher's
// goroutine after each debounced change.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsW, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsW.Add(filepath.Dir(abs)); err != nil {
		fsW.Close()
		return nil, err
	}

	w := &Watcher{
		path:      abs,
		debounce:  debounce,
		onChange:  onChange,
		fsWatcher: fsW,
		cancel:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops watching. Safe to call once.
func (w *Watcher) Close() {
	close(w.cancel)
	w.fsWatcher.Close()
}

// loop processes fsnotify events with debouncing.
func (w *Watcher) loop() {
	var timer *time.Timer

	for {
		select {
		case <-w.cancel:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
