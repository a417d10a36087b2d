package venue

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pmezard/go-difflib/difflib"
)

// DebounceInterval is the delay after an fsnotify event before the table is
// re-read. Editors produce bursts of write events for a single save.
const DebounceInterval = 100 * time.Millisecond

// Watcher hot-reloads the venue table file into the resolver whenever it
// changes on disk.
type Watcher struct {
	path     string
	resolver *Resolver
}

func NewWatcher(path string, resolver *Resolver) *Watcher {
	return &Watcher{path: path, resolver: resolver}
}

// Run blocks until ctx is cancelled. The parent directory is watched rather
// than the file itself so atomic save-and-rename editors keep working.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	slog.Info("watching venue table", "path", w.path)

	var debounce *time.Timer
	debounceCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(DebounceInterval, func() {
				select {
				case debounceCh <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("venue table watcher error", "error", err)
		case <-debounceCh:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	before := renderTable(w.resolver.Snapshot())

	entries, err := LoadTable(w.path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reload venue table, keeping previous table", "path", w.path, "error", err)
		return
	}
	w.resolver.Replace(entries)

	after := renderTable(w.resolver.Snapshot())
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: "venues (previous)",
		ToFile:   "venues (reloaded)",
		Context:  1,
	})
	if err != nil {
		diff = ""
	}
	slog.InfoContext(ctx, "venue table reloaded", "path", w.path, "entries", len(entries), "diff", diff)
}

func renderTable(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String()+"\n")
	}
	return lines
}
