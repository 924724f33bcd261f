package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDatabase calls run each time the database file (or its -wal and
// -journal companions) stays unchanged for debounce after a change. It
// returns when ctx is done or run fails.
func watchDatabase(ctx context.Context, file string, debounce time.Duration, run func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("file watcher failed: %w", err)
	}
	defer watcher.Close()

	// SQLite replaces and recreates side files, so watch the directory.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}
	base := filepath.Base(file)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("database changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "error", err)

		case <-timer.C:
			if err := run(ctx); err != nil {
				return err
			}
		}
	}
}
