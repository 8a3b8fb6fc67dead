package store

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"assessctl/internal/system"
)

// Watcher notices when the data file is rewritten on disk. The directory is
// watched rather than the file because SaveChanges replaces it by rename.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changed atomic.Bool
	done    chan struct{}
}

// Watch starts watching path. Close stops it.
func Watch(path string) (*Watcher, error) {
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
	w := &Watcher{watcher: fw, path: path, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				system.Logger.Debug("data file event", "path", event.Name, "op", event.Op.String())
				w.changed.Store(true)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			system.Logger.Warn("data file watcher", "err", err)
		}
	}
}

// Changed reports whether the file changed since the last call.
func (w *Watcher) Changed() bool { return w.changed.Swap(false) }

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
