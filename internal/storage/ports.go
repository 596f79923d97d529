// Package storage defines the port the ledger persists through.
package storage

import (
	"context"

	"tally/internal/core"
)

// Store is a backing persistent store for the ledger. One implementation
// exists per storage strategy (flat file, in-memory).
type Store interface {
	// Hydrate loads the full record set, in the order it was persisted.
	// A store with nothing persisted yet returns an empty slice, not an
	// error.
	Hydrate(ctx context.Context) ([]core.ExpenseRecord, error)

	// Persist overwrites the store with a full snapshot of the records.
	// This is a snapshot rewrite, not an append.
	Persist(ctx context.Context, records []core.ExpenseRecord) error
}
