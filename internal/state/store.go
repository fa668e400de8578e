package state

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/five82/platter/internal/logtail"
)

// Snapshot is the latest session activity available to the UI.
type Snapshot struct {
	Entries             []logtail.Entry
	HasEntries          bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive read failures
}

// IsStale reports whether the log has been unreadable for several polls.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored entries. When err is non-nil the previous
// entries are kept but the error is recorded for visibility.
func (s *Store) Update(entries []logtail.Entry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Entries = cloneEntries(entries)
	s.snapshot.HasEntries = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Entries = cloneEntries(s.snapshot.Entries)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneEntries(entries []logtail.Entry) []logtail.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]logtail.Entry, len(entries))
	for i, e := range entries {
		e.Fields = maps.Clone(e.Fields)
		dup[i] = e
	}
	return dup
}
