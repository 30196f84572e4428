// Package history is the blueprint history repository: an ordered,
// most-recent-first list, deduplicated by device model, capped at a fixed
// number of records. Records leave the list only through cap eviction or an
// explicit Clear.
package history

import (
	"context"
	"errors"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// DefaultLimit caps the history list when no explicit limit is configured.
const DefaultLimit = 10

// Store is the repository interface injected into the UI layers.
type Store interface {
	// Append inserts a record at the front. An existing record with the
	// same device model is replaced (newest wins), and the list is pruned
	// to the cap.
	Append(ctx context.Context, b api.Blueprint) error
	// List returns all records, most recent first.
	List(ctx context.Context) ([]api.Blueprint, error)
	// Get looks a record up by ID.
	Get(ctx context.Context, id string) (api.Blueprint, error)
	// Latest returns the most recent record, or ErrNotFound when empty.
	Latest(ctx context.Context) (api.Blueprint, error)
	// Clear removes every record.
	Clear(ctx context.Context) error
	Close() error
}

var ErrNotFound = errors.New("blueprint not found")
