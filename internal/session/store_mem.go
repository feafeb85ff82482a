package session

import (
	"context"
	"sync"

	"github.com/manual-labs/quizflow/internal/quiz"
)

type memoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewMemoryStore returns an in-memory Store with the same optimistic
// versioning as the SQL store. Used in tests and local experiments.
func NewMemoryStore() Store {
	return &memoryStore{recs: map[string]Record{}}
}

func (m *memoryStore) Load(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memoryStore) Insert(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.Version = 1
	m.recs[rec.ID] = rec
	return nil
}

func (m *memoryStore) SaveProgress(ctx context.Context, id string, p quiz.Progress, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return ErrNotFound
	}
	if rec.Version != version {
		return ErrVersionConflict
	}
	rec.Progress = p
	rec.Version++
	m.recs[id] = rec
	return nil
}
