// Package store defines the persistence surface for brewdex.
package store

import (
	"context"

	"github.com/grainbill/brewdex/internal/mapping"
)

// Store is the persistence interface brewdex components consume: the
// mapping engine's entity operations plus transactions and lifecycle.
type Store interface {
	mapping.EntityStore

	// RunInTransaction runs fn against a store bound to a single database
	// transaction, committing on success and rolling back on error.
	RunInTransaction(ctx context.Context, fn func(tx Store) error) error

	// Close releases the underlying connections.
	Close() error
}
