// Package state shares session activity between the background poller and
// the UI.
//
// # Overview
//
// The poller tails the session log and publishes the decoded entries with
// Update; the UI reads them with Snapshot on its own tick. A Store is ready
// to use as a zero value.
//
//	Poller:                        UI:
//	logtail.ReadEntries()          store.Snapshot()
//	store.Update(entries, err)     render activity tab
//
// # Update Semantics
//
// A successful Update replaces the entries and clears the error. A failed
// Update keeps the previous entries, records the error and increments
// ConsecutiveFailures, so the UI keeps showing the last good tail while
// flagging that it may be out of date. IsStale turns true after two
// failures in a row.
//
// # Copies
//
// Update and Snapshot both copy the entry slice and each entry's field map,
// and Snapshot wraps the stored error in a new value. Readers can never
// observe or cause a mutation of the stored state.
package state
