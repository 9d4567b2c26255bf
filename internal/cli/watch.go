package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultDebounce collapses the burst of events an editor produces when
// saving a file.
const defaultDebounce = 300 * time.Millisecond

// watcher re-runs a build whenever one of the files it depends on changes.
type watcher struct {
	logger   *log.Logger
	debounce time.Duration

	// build runs once per change and returns the files to watch next.
	build func() ([]string, error)
}

// run builds once, then rebuilds on every change until ctx is canceled.
// Build errors are logged and do not end the loop.
func (w *watcher) run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	rebuild := func() {
		files, err := w.build()
		if err != nil {
			printError("Render failed: %v", err)
		}
		if files == nil {
			return
		}
		clear(watched)
		for _, f := range files {
			if f == "" {
				continue
			}
			abs, err := filepath.Abs(f)
			if err != nil {
				continue
			}
			watched[abs] = true
			// Directories are watched so that files replaced by rename
			// are still seen.
			if dir := filepath.Dir(abs); !dirs[dir] {
				if err := fw.Add(dir); err != nil {
					w.logger.Warn("cannot watch", "dir", dir, "err", err)
					continue
				}
				dirs[dir] = true
			}
		}
	}

	rebuild()
	w.logger.Info("watching for changes", "files", len(watched))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.logger.Debug("change", "file", ev.Name, "op", ev.Op.String())
				pending = time.After(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			rebuild()
		}
	}
}
