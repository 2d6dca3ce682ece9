// Package fsnotify reloads documentation content when files on disk change.
package fsnotify

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/docsite"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls Reload after files under Root change. Bursts of events
// within Debounce of each other trigger a single reload.
type Watcher struct {
	Root     string
	Debounce time.Duration
	Reload   func(ctx context.Context) error
	Logger   *slog.Logger
}

// Run watches Root and its subdirectories until ctx is done. Reload errors
// are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return docsite.Errorf(docsite.EINTERNAL, "failed to create watcher: %v", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.Root); err != nil {
		return docsite.Errorf(docsite.EINVALID, "failed to watch %s: %v", w.Root, err)
	}
	w.logger().Info("watching content", "root", w.Root)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			w.logger().Debug("content event", "op", ev.Op.String(), "path", ev.Name)
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, ev.Name); err != nil {
						w.logger().Warn("failed to watch directory", "path", ev.Name, "err", err)
					}
				}
			}
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger().Warn("watcher error", "err", err)
		case <-timer.C:
			if err := w.Reload(ctx); err != nil {
				w.logger().Error("content reload failed", "err", err)
				continue
			}
			w.logger().Info("content reloaded", "root", w.Root)
		}
	}
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

func (w *Watcher) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w.Logger
}
