package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/zeebo/xxh3"
)

const debounceWindow = 100 * time.Millisecond

// Watcher reloads the tuning file whenever it changes on disk, for
// hot-tuning during playtests. Valid reloads arrive on Events; parse and
// validation failures arrive on Errors and leave the previous tuning in
// effect. Editor double-writes are deduplicated by content hash.
type Watcher struct {
	Events chan Tuning
	Errors chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once

	lastHash uint64
	lastSeen time.Time
}

// Watch starts watching the tuning file's directory. Watching the
// directory instead of the file survives editors that replace the file on
// save.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		Events:  make(chan Tuning, 4),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: fw,
		closeCh: make(chan struct{}),
	}
	if data, err := os.ReadFile(abs); err == nil {
		w.lastHash = xxh3.Hash(data)
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(w.lastSeen) < debounceWindow {
				continue
			}
			w.lastSeen = now
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// Editors that write via rename can leave a brief gap where the
		// file is missing; the next event retries.
		return
	}

	h := xxh3.Hash(data)
	if h == w.lastHash {
		return
	}
	w.lastHash = h

	t, err := Parse(data)
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}

	select {
	case w.Events <- t:
	case <-w.closeCh:
	}
}
