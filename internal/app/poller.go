package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/logtail"
	"github.com/five82/platter/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
	watchDebounce       = 100 * time.Millisecond
)

// Source names the session log the activity tab follows.
type Source struct {
	Path  string
	Lines int // tail length; non-positive reads the whole file
}

// Poll re-reads the session log into store until ctx is cancelled. Reads
// happen every interval, and shortly after the log file changes when the
// platform supports file watching. Failed reads back off exponentially up
// to maxBackoff. Poll always returns nil so it can share an errgroup with
// the UI.
func Poll(ctx context.Context, store *state.Store, src Source, interval time.Duration, logger *zap.Logger) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	events, errs, stopWatch := watchLog(src.Path, logger)
	defer stopWatch()

	timer := time.NewTimer(0)
	defer timer.Stop()

	woken := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
			} else if !woken && touches(ev, src.Path) {
				woken = true
				timer.Reset(watchDebounce)
			}
			continue
		case err, ok := <-errs:
			if !ok {
				errs = nil
			} else {
				logger.Debug("log watch error", zap.Error(err))
			}
			continue
		case <-timer.C:
		}
		woken = false
		failures := refresh(store, src, logger)
		timer.Reset(calculateBackoff(failures, interval))
	}
}

// watchLog watches the directory holding path. When watching is not
// possible the returned channels are nil and Poll falls back to the timer.
func watchLog(path string, logger *zap.Logger) (<-chan fsnotify.Event, <-chan error, func()) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Debug("log watch unavailable", zap.Error(err))
		return nil, nil, func() {}
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		logger.Debug("log watch unavailable", zap.String("dir", dir), zap.Error(err))
		_ = w.Close()
		return nil, nil, func() {}
	}
	return w.Events, w.Errors, func() { _ = w.Close() }
}

func touches(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// refresh reads the log once and returns the consecutive failure count.
func refresh(store *state.Store, src Source, logger *zap.Logger) int {
	entries, err := logtail.ReadEntries(src.Path, src.Lines)
	store.Update(entries, err)
	snap := store.Snapshot()
	if err != nil && snap.ConsecutiveFailures == 1 {
		logger.Warn("activity log unreadable", zap.String("path", src.Path), zap.Error(err))
	}
	return snap.ConsecutiveFailures
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
