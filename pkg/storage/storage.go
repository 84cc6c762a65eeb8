package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/loottable/pkg/loot"
	"github.com/jwebster45206/loottable/pkg/resource"
)

// StoredTable is a built loot table together with its bookkeeping.
// Revision changes on every save.
type StoredTable struct {
	ID        resource.Location `json:"id"`
	Revision  uuid.UUID         `json:"revision"`
	UpdatedAt time.Time         `json:"updated_at"`
	Table     loot.Document     `json:"table"`
}

// Storage defines the interface for persisting built loot tables
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveTable stores doc under id, replacing any previous revision
	SaveTable(ctx context.Context, id resource.Location, doc loot.Document) (*StoredTable, error)
	// LoadTable returns nil, nil when id is unknown
	LoadTable(ctx context.Context, id resource.Location) (*StoredTable, error)
	DeleteTable(ctx context.Context, id resource.Location) error
	// ListTables returns the stored IDs sorted by their string form
	ListTables(ctx context.Context) ([]resource.Location, error)
}
