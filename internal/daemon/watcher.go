package daemon

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/doclink/internal/logfields"
)

// Watcher monitors the generated docs tree and signals a debounced trigger
// after the external generator stops writing.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	trigger  chan struct{}
}

// NewWatcher creates a watcher over the docs root. The root and all existing
// subdirectories are watched; directories created later are added on the fly
// (fsnotify itself is not recursive).
func NewWatcher(root string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve docs root: %w", err)
	}

	w := &Watcher{
		root:     absRoot,
		watcher:  fw,
		debounce: debounce,
		trigger:  make(chan struct{}, 1),
	}
	if err := w.addTree(absRoot); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Trigger returns the channel that fires once per quiet period after changes.
func (w *Watcher) Trigger() <-chan struct{} {
	return w.trigger
}

// Start begins watching until the context is canceled.
func (w *Watcher) Start(ctx context.Context) {
	slog.Info("Watching docs tree", logfields.DocsRoot(w.root), slog.Duration("debounce", w.debounce))
	go w.loop(ctx)
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.trigger <- struct{}{}:
			default: // a trigger is already pending
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
