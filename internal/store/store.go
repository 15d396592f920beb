// Package store owns the in-memory journal collection and mediates all
// reads and writes to persistence.
package store

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"daybook/internal/kv"
	"daybook/internal/logger"
	"daybook/internal/model"
)

// entriesKey is the fixed key the whole collection lives under, as one JSON
// blob. No version field; an undecodable blob reads as no prior data.
const entriesKey = "daybook/entries"

// Store holds the entry collection for the life of the process. One caller
// at a time is assumed: mutations are synchronous and unlocked, rewrite the
// full collection on every change, and notify observers before returning.
type Store struct {
	kv        kv.KV
	entries   []model.Entry
	observers []func()
}

// Open reads the persisted collection once and returns a ready store. A
// missing or undecodable blob is a normal first run, not an error; the
// store starts empty and the next mutation writes fresh state.
func Open(ctx context.Context, adapter kv.KV) *Store {
	s := &Store{kv: adapter}

	raw, ok, err := adapter.Get(ctx, entriesKey)
	if err != nil {
		logger.WithFields(logrus.Fields{"key": entriesKey}).WithError(err).Warn("load entries failed, starting empty")
		return s
	}
	if !ok {
		return s
	}

	var entries []model.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		logger.Log.WithError(err).Warn("stored entries undecodable, starting empty")
		return s
	}
	s.entries = entries
	return s
}

// Add appends e to the end of the collection, persists, and notifies
// observers. The entry is stored verbatim; input validation is the
// caller's job (model.Entry.Validate at the boundary).
func (s *Store) Add(ctx context.Context, e model.Entry) {
	s.entries = append(s.entries, e)
	s.persist(ctx)
	s.notify()
}

// Delete removes the entries at the given positions in one atomic update.
// Indices are resolved against the collection as it stands now; duplicates
// and out-of-range values are ignored. Returns the number removed.
func (s *Store) Delete(ctx context.Context, indices []int) int {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.entries) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]model.Entry, 0, len(s.entries)-len(drop))
	for i, e := range s.entries {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	s.entries = kept

	s.persist(ctx)
	s.notify()
	return len(drop)
}

// persist serializes the whole collection and overwrites the stored blob.
// Failures are absorbed: the in-memory collection stays authoritative and
// the next successful mutation rewrites everything anyway.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		logger.Log.WithError(err).Warn("encode entries failed, keeping in-memory state")
		return
	}
	if err := s.kv.Set(ctx, entriesKey, raw); err != nil {
		logger.WithFields(logrus.Fields{"key": entriesKey}).WithError(err).Warn("persist entries failed, keeping in-memory state")
	}
}

// Subscribe registers fn to run synchronously after every successful
// mutation, so readers never observe stale state once Add or Delete has
// returned. There is no unsubscribe.
func (s *Store) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Entries returns a snapshot of the collection in creation order.
func (s *Store) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
