package dataset

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watch invalidates the store when a source file is rewritten and then calls
// onReload (typically an SSE broadcast). It blocks until ctx is cancelled.
func Watch(ctx context.Context, store *Store, src Source, logger *slog.Logger, onReload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the containing directories; the files themselves may be
	// replaced atomically, which drops a direct file watch.
	watched := make(map[string]bool)
	targets := make(map[string]bool)
	for _, p := range []string{src.ParquetPath, src.CSVPath} {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				logger.Error("failed to watch dataset directory", "dir", dir, "error", err)
				continue
			}
			watched[dir] = true
		}
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				logger.Debug("dataset file changed, reloading", "file", event.Name)
				if err := store.Reload(ctx); err != nil {
					logger.Error("dataset reload failed", "error", err)
					return
				}
				onReload()
			})

		case err := <-watcher.Errors:
			logger.Error("watcher error", "error", err)
		}
	}
}
