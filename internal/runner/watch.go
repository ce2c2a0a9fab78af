package runner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/unittap/unittap/internal/harness"
)

// debounce absorbs bursts of filesystem events from a single save.
const debounce = 250 * time.Millisecond

// Watch runs the suite once, then reruns it whenever a file under one of the
// given roots changes. Directories are watched recursively; newly created
// subdirectories are added to the watch set. Watch blocks until ctx is
// cancelled or the watcher fails, and returns the statistics of the most
// recent run.
func (r *Runner) Watch(ctx context.Context, roots []string) (*harness.Stats, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	defer w.Close()

	for _, root := range roots {
		if err := addTree(w, root); err != nil {
			return nil, err
		}
	}

	stats := r.Run(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return stats, nil
		case ev, ok := <-w.Events:
			if !ok {
				return stats, nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// Best effort: the path may already be gone.
				_ = addTree(w, ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return stats, nil
			}
			return stats, err
		case <-fire:
			timer = nil
			fire = nil
			stats = r.Run(ctx)
		}
	}
}

// addTree registers path and, when it is a directory, every directory below
// it. Entries that vanish mid-walk are skipped.
func addTree(w *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return w.Add(path)
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
}
