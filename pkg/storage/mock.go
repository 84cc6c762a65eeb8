package storage

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/loottable/pkg/loot"
	"github.com/jwebster45206/loottable/pkg/resource"
)

// MockStorage is an in-memory implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	tables    map[resource.Location]*StoredTable
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		tables: make(map[resource.Location]*StoredTable),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

// SaveTable stores a copy of doc under id with a fresh revision.
func (m *MockStorage) SaveTable(ctx context.Context, id resource.Location, doc loot.Document) (*StoredTable, error) {
	if id.IsZero() {
		return nil, errors.New("table id cannot be empty")
	}
	stored := &StoredTable{
		ID:        id,
		Revision:  uuid.New(),
		UpdatedAt: time.Now().UTC(),
		Table:     doc,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[id] = stored
	return stored, nil
}

// LoadTable returns nil, nil when id is unknown.
func (m *MockStorage) LoadTable(ctx context.Context, id resource.Location) (*StoredTable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, exists := m.tables[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	copied := *stored
	return &copied, nil
}

func (m *MockStorage) DeleteTable(ctx context.Context, id resource.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, id)
	return nil
}

func (m *MockStorage) ListTables(ctx context.Context) ([]resource.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]resource.Location, 0, len(m.tables))
	for id := range m.tables {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, resource.Compare)
	return ids, nil
}
