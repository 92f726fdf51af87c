package assets

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ChangedHandler is called when a watched asset file changes on disk.
type ChangedHandler func(blockID int, path string)

// Watcher refreshes image blocks whose backing file is edited outside
// the app. When an external tool rewrites the file, the handler fires
// and the frontend re-reads the asset.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange ChangedHandler
	mu       sync.RWMutex
	watching map[string]int // absolute path -> block id
}

// New creates an asset watcher and starts its event loop.
func New(onChange ChangedHandler) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		watching: make(map[string]int),
	}

	go w.loop()

	return w, nil
}

// Watch registers a block's asset file.
func (w *Watcher) Watch(blockID int, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.watching[absPath] = blockID
	w.mu.Unlock()

	// fsnotify watches directories, not individual files.
	return w.watcher.Add(filepath.Dir(absPath))
}

// Unwatch removes a block's registration. The directory watch stays;
// unmatched events are simply ignored.
func (w *Watcher) Unwatch(blockID int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, id := range w.watching {
		if id == blockID {
			delete(w.watching, path)
			break
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			w.mu.RLock()
			blockID, watched := w.watching[absPath]
			w.mu.RUnlock()

			if watched && w.onChange != nil {
				w.onChange(blockID, absPath)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("asset watcher: %v", err)
		}
	}
}
