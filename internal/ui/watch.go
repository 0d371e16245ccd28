package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rubber_duck/explorer/internal/tree"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the tree file whenever it changes on disk
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher watches path. The parent directory is watched so editors that
// replace the file by renaming are noticed too.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{path: abs, watcher: w, logger: logger}, nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// Next waits for the next change and reloads the tree. The update loop
// must call Next again after each message to keep watching.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(event) {
					continue
				}
				w.settle()
				w.logger.Debug("tree file changed, reloading", "file", w.path)
				root, err := tree.Load(w.path)
				if err != nil {
					return TreeLoadErrorMsg{Err: err}
				}
				return TreeLoadedMsg{Root: root}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return TreeLoadErrorMsg{Err: fmt.Errorf("watch %s: %w", w.path, err)}
			}
		}
	}
}

// settle swallows the burst of events a single save usually produces
func (w *Watcher) settle() {
	timer := time.NewTimer(reloadDebounce)
	defer timer.Stop()
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			return
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
