// Package kv provides the key-value persistence adapter the journal store
// writes through. Values are opaque byte blobs; single process, single writer.
package kv

import "context"

// KV is the persistence contract the store requires: get a blob or learn it
// is absent, and overwrite a blob. No transactions, no partial writes.
type KV interface {
	// Get returns the value stored under key. The bool reports presence;
	// an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases the adapter's resources.
	Close() error
}

// Mem is an in-memory KV for tests. SetErr, when non-nil, is returned by
// every Set so persist-failure paths can be exercised.
type Mem struct {
	Data   map[string][]byte
	SetErr error
}

// NewMem returns an empty in-memory adapter.
func NewMem() *Mem {
	return &Mem{Data: map[string][]byte{}}
}

func (m *Mem) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *Mem) Set(ctx context.Context, key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Mem) Close() error { return nil }
