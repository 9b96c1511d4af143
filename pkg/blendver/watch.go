package blendver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"
)

// Watch auto-snapshots the document every time it changes on disk,
// until ctx is cancelled. Change bursts (editors write several times
// per save) are coalesced over the debounce window before a commit is
// made. Each snapshot goes through the same staging path as Commit.
func (h *History) Watch(ctx context.Context, debounce time.Duration) error {
	if err := h.requireVersioned(); err != nil {
		return err
	}
	if debounce <= 0 {
		debounce = time.Second
	}

	w := newWatchWorker(h, debounce)
	if err := w.Start(ctx); err != nil {
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-w.done:
		// The loop died on its own; report it instead of silently
		// blocking until the operator signals.
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stopErr := w.Stop(stopCtx)
	if runErr != nil {
		return runErr
	}
	return stopErr
}

type watchWorker struct {
	*worker.BaseWorker
	history  *History
	debounce time.Duration
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	done     chan error
}

func newWatchWorker(h *History, debounce time.Duration) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("document-watcher"),
		history:    h,
		debounce:   debounce,
		done:       make(chan error, 1),
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// fsnotify reports per-file events for a watched directory; the run
	// loop filters on the document path.
	if err := watcher.Add(w.history.doc.Dir()); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.history.doc.Dir(), err)
	}

	w.watcher = watcher

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, func(ctx context.Context) error {
		err := w.run(ctx)
		w.done <- err
		return err
	})
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watchWorker) run(ctx context.Context) error {
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Name != w.history.doc.Path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-fire
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			// Synchronous on purpose: overlapping snapshots would race
			// on the shared staging directory.
			w.snapshot()

		case werr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.history.logger != nil {
				w.history.logger.Error("fsnotify error", "error", werr)
			}
		}
	}
}

// autosaveMessage derives the commit message from the document's own
// modification time, matching the commit dates: identical saves read
// identically on any machine.
func autosaveMessage(mtime time.Time) string {
	return "autosave " + mtime.UTC().Format(time.RFC3339)
}

func (w *watchWorker) snapshot() {
	info, err := os.Stat(w.history.doc.Path)
	if err != nil {
		if w.history.logger != nil {
			w.history.logger.Error("autosave skipped", "error", err)
		}
		return
	}
	msg := autosaveMessage(info.ModTime())
	if err := w.history.Commit(msg); err != nil {
		if w.history.logger != nil {
			w.history.logger.Error("autosave failed", "error", err)
		}
		return
	}
	if w.history.logger != nil {
		w.history.logger.Info("autosaved", "document", w.history.doc.Name())
	}
}
