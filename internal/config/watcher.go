package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatcherIface delivers a fresh Config every time the config file changes.
type WatcherIface interface {
	Events() <-chan Config
	Close()
}

// Watcher watches the config file for changes.
type Watcher struct {
	path   string
	events chan Config
	errors chan error
	done   chan struct{}
	once   sync.Once
	fw     *fsnotify.Watcher
}

var _ WatcherIface = (*Watcher)(nil)

// NewWatcher creates and starts a watcher on the config file at path.
// The parent directory is watched so that editors which replace the file
// are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:   path,
		events: make(chan Config, 4),
		errors: make(chan error, 4),
		done:   make(chan struct{}),
		fw:     fw,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.errors)
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Truncate-then-write saves fire on a still empty file; wait
			// for the write that leaves valid JSON behind.
			cfg, err := Read(w.path)
			if err != nil {
				continue
			}
			select {
			case w.events <- cfg:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Events returns the channel on which reloaded configs are delivered.
// It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Config { return w.events }

// Errors returns the channel of fsnotify errors.
// It is closed when the watcher stops.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)
		w.fw.Close()
	})
}
