package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/proteinmuffins/muffins/internal/packs"
)

// LoadFunc returns the current catalog. Watch calls it after every change.
type LoadFunc func() ([]packs.PageConfig, error)

// debounce collapses the burst of events editors emit for a single save.
const debounce = 200 * time.Millisecond

// Watch regenerates the site every time the catalog file at path changes,
// until ctx is cancelled. The directory is watched rather than the file so
// editors that replace the file on save keep triggering events.
func (g *Generator) Watch(ctx context.Context, path string, load LoadFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	slog.Info("Watching pack catalog for changes", "path", abs)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			catalog, err := load()
			if err != nil {
				slog.Error("Failed to reload pack catalog", "path", abs, "error", err)
				continue
			}
			report := g.Generate(ctx, catalog)
			if err := report.Err(); err != nil {
				slog.Warn("Regeneration finished with errors", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", "error", err)
		}
	}
}
