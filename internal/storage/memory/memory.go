// Package memory implements the in-memory storage strategy. Nothing ever
// touches disk; the store simply remembers the last snapshot it was given.
package memory

import (
	"context"
	"sync"

	"tally/internal/core"
)

type Store struct {
	mu      sync.Mutex
	records []core.ExpenseRecord
}

func New() *Store {
	return &Store{}
}

// Hydrate returns the last persisted snapshot, empty for a fresh store.
func (s *Store) Hydrate(_ context.Context) ([]core.ExpenseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.ExpenseRecord(nil), s.records...), nil
}

// Persist replaces the remembered snapshot with a defensive copy.
func (s *Store) Persist(_ context.Context, records []core.ExpenseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]core.ExpenseRecord(nil), records...)
	return nil
}
