package history

import (
	"context"
	"sync"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// memStore keeps history in memory, most-recent-first. It backs tests and
// the silent fallback when the on-disk store cannot be opened.
type memStore struct {
	mu    sync.RWMutex
	limit int
	items []api.Blueprint
}

// NewMem returns an in-memory Store with the given cap.
func NewMem(limit int) Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &memStore{limit: limit}
}

func (m *memStore) Append(_ context.Context, b api.Blueprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]api.Blueprint, 0, len(m.items)+1)
	kept = append(kept, b)
	for _, it := range m.items {
		if it.DeviceModel == b.DeviceModel {
			continue
		}
		kept = append(kept, it)
	}
	if len(kept) > m.limit {
		kept = kept[:m.limit]
	}
	m.items = kept
	return nil
}

func (m *memStore) List(_ context.Context) ([]api.Blueprint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]api.Blueprint(nil), m.items...), nil
}

func (m *memStore) Get(_ context.Context, id string) (api.Blueprint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return api.Blueprint{}, ErrNotFound
}

func (m *memStore) Latest(_ context.Context) (api.Blueprint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.items) == 0 {
		return api.Blueprint{}, ErrNotFound
	}
	return m.items[0], nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

func (m *memStore) Close() error { return nil }
