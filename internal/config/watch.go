package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the store whenever the config file changes on disk.
// It watches the parent directory so editors that replace the file
// (rename-over-write) are still caught. Invalid files are logged and
// skipped; the store keeps the last valid configuration. Blocks until
// the context is cancelled.
func Watch(ctx context.Context, path string, store *Store, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir %s: %w", dir, err)
	}
	if err := watcher.Add(path); err != nil {
		logger.Debug("unable to watch config file directly", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			cfg, err := LoadFromPath(path)
			if err != nil {
				logger.Warn("config change rejected", "error", err)
				continue
			}
			if err := store.Replace(cfg); err != nil {
				logger.Warn("config change rejected", "error", err)
				continue
			}
			logger.Info("config reloaded", "path", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
