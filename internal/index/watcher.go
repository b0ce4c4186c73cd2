package index

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/cifra/internal/storage"
)

// Event kinds reported by Watch.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Event describes one watcher-driven catalogue change.
type Event struct {
	Kind string
	Path string
	// Code is the hymn code; for deletions it is derived from the file name.
	Code string
}

// EventCallback is called after a watcher-driven catalogue change.
type EventCallback func(Event)

const reconcileDelay = 200 * time.Millisecond

type watcher struct {
	db     HymnIndex
	store  storage.Provider
	root   string
	logger *slog.Logger
	cb     EventCallback
}

// Watch starts an fsnotify watcher on the library root and keeps the
// catalogue in sync until ctx is cancelled. It calls cb (if non-nil) after
// each successful catalogue mutation.
//
// New directories created at runtime are added to the watch list. Rename
// events trigger a debounced reconciliation pass against the library.
func Watch(ctx context.Context, db HymnIndex, store storage.Provider, root string, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, root); err != nil {
		return err
	}

	wt := &watcher{db: db, store: store, root: root, logger: logger, cb: cb}
	logger.Info("watcher: started", slog.String("root", root))

	var reconcileTimer *time.Timer
	var reconcileCh <-chan time.Time

	scheduleReconcile := func() {
		if reconcileTimer == nil {
			reconcileTimer = time.NewTimer(reconcileDelay)
			reconcileCh = reconcileTimer.C
		} else {
			reconcileTimer.Reset(reconcileDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reconcileTimer != nil {
				reconcileTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reconcileCh:
			wt.reconcile()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					wt.indexNewDir(ev.Name)
					continue
				}
			}
			if wt.handle(ev) {
				scheduleReconcile()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// handle applies one file event to the catalogue. It reports whether a
// reconciliation pass is needed.
func (wt *watcher) handle(ev fsnotify.Event) bool {
	rel, err := filepath.Rel(wt.root, ev.Name)
	if err != nil || !storage.IsHymnFile(rel) {
		return false
	}

	switch {
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		kind := EventUpdated
		if ev.Op&fsnotify.Create != 0 {
			kind = EventCreated
		}
		wt.index(rel, kind)

	case ev.Op&fsnotify.Remove != 0:
		wt.remove(rel)

	case ev.Op&fsnotify.Rename != 0:
		// fsnotify reports Rename on the old path only; the new path shows
		// up as a Create if it stays inside a watched directory.
		wt.remove(rel)
		return true
	}
	return false
}

func (wt *watcher) index(rel, kind string) {
	data, err := wt.store.Read(rel)
	if err != nil {
		wt.logger.Warn("watcher: read failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	h, err := IndexFile(wt.db, rel, data, wt.logger)
	if err != nil {
		wt.logger.Warn("watcher: index failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	wt.logger.Debug("watcher: indexed", slog.String("path", rel), slog.String("op", kind))
	wt.emit(Event{Kind: kind, Path: rel, Code: h.Code})
}

func (wt *watcher) remove(rel string) {
	if err := wt.db.DeleteByPath(rel); err != nil {
		wt.logger.Warn("watcher: delete failed", slog.String("path", rel), slog.String("error", err.Error()))
		return
	}
	wt.logger.Debug("watcher: deleted", slog.String("path", rel))
	wt.emit(Event{Kind: EventDeleted, Path: rel, Code: storage.CodeFromPath(rel)})
}

func (wt *watcher) emit(ev Event) {
	if wt.cb != nil {
		wt.cb(ev)
	}
}

// reconcile removes catalogue entries whose files are gone and indexes
// files that are new or changed.
func (wt *watcher) reconcile() {
	checksums, err := wt.db.AllChecksums()
	if err != nil {
		wt.logger.Warn("reconcile: all checksums failed", slog.String("error", err.Error()))
		return
	}
	metas, err := wt.store.List("")
	if err != nil {
		wt.logger.Warn("reconcile: list failed", slog.String("error", err.Error()))
		return
	}

	disk := make(map[string]string, len(metas))
	for _, m := range metas {
		disk[m.Path] = m.Checksum
	}
	for p := range checksums {
		if _, ok := disk[p]; !ok {
			wt.remove(p)
		}
	}
	for p, cs := range disk {
		old, known := checksums[p]
		switch {
		case !known:
			wt.index(p, EventCreated)
		case old != cs:
			wt.index(p, EventUpdated)
		}
	}
}

// indexNewDir indexes the hymn files found in a newly created directory.
func (wt *watcher) indexNewDir(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(wt.root, path)
		if relErr != nil || !storage.IsHymnFile(rel) {
			return nil
		}
		wt.index(rel, EventCreated)
		return nil
	})
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
