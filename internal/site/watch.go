package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long the watcher waits for edits to settle.
const DebounceInterval = 200 * time.Millisecond

// Watch calls rebuild after files under dir change, coalescing bursts of
// events. Rebuild errors are logged and watching continues. Watch returns
// when ctx is cancelled.
func Watch(ctx context.Context, dir string, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Info("watching content", "dir", dir)

	debounce := time.NewTimer(DebounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("content changed", "file", event.Name, "op", event.Op.String())
			pending = true
			debounce.Reset(DebounceInterval)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			start := time.Now()
			if err := rebuild(); err != nil {
				slog.Error("rebuild failed", "error", err)
				continue
			}
			slog.Info("rebuilt site", "duration", time.Since(start))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func relevant(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
