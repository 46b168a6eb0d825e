package filesystem

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"rehearse/internal/ports"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher signals when the annotation document changes on disk, debounced so
// editor write bursts collapse into one reload. The parent directory is
// watched because many editors replace files via rename.
type Watcher struct {
	fw      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	once    sync.Once
}

var _ ports.DocumentWatcher = (*Watcher)(nil)

// NewWatcher watches one document path. Pass debounce <= 0 for the default.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving document path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		fw:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go w.run(filepath.Base(abs), debounce)
	return w, nil
}

func (w *Watcher) run(name string, debounce time.Duration) {
	var timer *time.Timer
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, w.emit)

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next
			// successful event still triggers a reload.

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) emit() {
	select {
	case <-w.done:
	case w.changes <- struct{}{}:
	default:
		// A reload is already pending.
	}
}

// Changes delivers one signal per debounced modification.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
