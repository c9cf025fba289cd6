package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/mongosession/pkg/attrmap"
)

// MemoryCollection is an in-process Collection. It is meant for tests and
// single-instance deployments; records are lost on restart.
type MemoryCollection struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryCollection creates an empty in-memory collection.
func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{records: make(map[string]Record)}
}

// FindOne returns a copy of the record stored under id.
func (m *MemoryCollection) FindOne(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	rec, ok := m.records[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrRecordNotFound
	}
	out := copyRecord(rec)
	return &out, nil
}

// Save stores a copy of rec, replacing any previous record.
func (m *MemoryCollection) Save(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = copyRecord(rec)
	return nil
}

// Insert stores a copy of rec unless its id is taken.
func (m *MemoryCollection) Insert(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.ID]; exists {
		return ErrDuplicateID
	}
	m.records[rec.ID] = copyRecord(rec)
	return nil
}

// Remove deletes the record stored under id.
func (m *MemoryCollection) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

// RemoveExpired deletes records that expired before the given time.
func (m *MemoryCollection) RemoveExpired(ctx context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, rec := range m.records {
		if !rec.NeverExpires() && rec.ExpireAt.Before(before) {
			delete(m.records, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored records, expired ones included.
func (m *MemoryCollection) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func copyRecord(rec Record) Record {
	rec.Data = attrmap.From(rec.Data).ToPlainMap()
	return rec
}
