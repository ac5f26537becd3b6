package store

import (
	"context"
	"maps"
	"sync"
)

// Row is one insert recorded by MemoryStore.
type Row struct {
	Collection string
	Record     map[string]any
}

// MemoryStore keeps inserts in process. It backs local development and
// stands in for the external store in tests.
type MemoryStore struct {
	mu   sync.Mutex
	rows []Row
	err  error
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert records the row, or returns the configured failure.
// Attempts are counted even when they fail.
func (m *MemoryStore) Insert(ctx context.Context, collection string, record map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, Row{Collection: collection, Record: maps.Clone(record)})
	if m.err != nil {
		return m.err
	}
	return ctx.Err()
}

// FailWith makes every later Insert return err. Pass nil to recover.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Rows returns a copy of all insert attempts in order
func (m *MemoryStore) Rows() []Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Row, len(m.rows))
	copy(out, m.rows)
	return out
}

// Count returns the number of insert attempts against collection
func (m *MemoryStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, r := range m.rows {
		if r.Collection == collection {
			n++
		}
	}
	return n
}
