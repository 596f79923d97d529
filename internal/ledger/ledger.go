// Package ledger holds the in-memory expense collection and its
// aggregation operations.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"tally/internal/core"
	"tally/internal/log"
	"tally/internal/storage"
)

// Ledger owns an ordered collection of expense records and the optional
// backing store they persist through. It is constructed once per run and
// is not safe for concurrent use; the application is single-threaded.
type Ledger struct {
	records []core.ExpenseRecord
	store   storage.Store // nil: pure in-memory, never auto-persisted
	logger  *log.Logger
}

// New constructs a ledger, hydrating it from the store when one is
// configured. A hydration failure is logged and the ledger starts empty;
// it never prevents the application from running.
func New(ctx context.Context, store storage.Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	l := &Ledger{
		store:  store,
		logger: logger.WithComponent(log.ComponentLedger),
	}
	if store == nil {
		return l
	}
	records, err := store.Hydrate(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "Failed to load expenses, starting fresh",
			log.FieldOperation, log.OpHydrate, log.FieldError, err)
		return l
	}
	l.records = records
	l.logger.InfoContext(ctx, "Ledger hydrated",
		log.FieldOperation, log.OpHydrate, log.FieldCount, len(records))
	return l
}

// Enter appends a record and rewrites the full snapshot through the store.
// The record is validated defensively; an invalid record is never stored.
// A persist failure is returned to the caller but the in-memory append is
// NOT rolled back, so memory and disk can diverge until the next
// successful persist.
func (l *Ledger) Enter(ctx context.Context, rec core.ExpenseRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid expense record: %w", err)
	}

	l.records = append(l.records, rec)
	l.logger.DebugContext(ctx, "Expense entered",
		log.FieldOperation, log.OpEnter,
		log.FieldCategory, rec.Category,
		log.FieldAmountCents, rec.Amount.Cents,
		log.FieldDate, rec.Date.String())

	if l.store == nil {
		return nil
	}
	if err := l.store.Persist(ctx, l.records); err != nil {
		l.logger.ErrorContext(ctx, "Failed to persist ledger, memory and store diverge",
			log.FieldOperation, log.OpPersist, log.FieldError, err)
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}

// Total returns the sum over all records, zero for an empty ledger.
func (l *Ledger) Total() core.Money {
	var total core.Money
	for _, rec := range l.records {
		total = total.Add(rec.Amount)
	}
	return total
}

// TotalByCategory groups records by their exact category string and sums
// each group. Categories with no records never appear. Map iteration order
// is unspecified; callers needing determinism use the extremes methods or
// sort the keys themselves.
func (l *Ledger) TotalByCategory() map[string]core.Money {
	totals := make(map[string]core.Money)
	for _, rec := range l.records {
		totals[rec.Category] = totals[rec.Category].Add(rec.Amount)
	}
	return totals
}

// MostExpensiveCategory returns the category with the highest total, false
// for an empty ledger. On a tie the category whose first record was
// entered earliest wins; the rule is stable because it derives from
// insertion order, not map iteration.
func (l *Ledger) MostExpensiveCategory() (string, bool) {
	return l.extremeCategory(func(candidate, best int64) bool { return candidate > best })
}

// LeastExpensiveCategory returns the category with the lowest total, false
// for an empty ledger. Ties resolve like MostExpensiveCategory.
func (l *Ledger) LeastExpensiveCategory() (string, bool) {
	return l.extremeCategory(func(candidate, best int64) bool { return candidate < best })
}

func (l *Ledger) extremeCategory(better func(candidate, best int64) bool) (string, bool) {
	if len(l.records) == 0 {
		return "", false
	}
	totals := l.TotalByCategory()

	// Walk records in insertion order so the first-encountered category
	// wins ties deterministically.
	seen := make(map[string]bool, len(totals))
	var best string
	found := false
	for _, rec := range l.records {
		if seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		if !found || better(totals[rec.Category].Cents, totals[best].Cents) {
			best = rec.Category
			found = true
		}
	}
	return best, true
}

// Trend buckets records by year-month and sums each bucket. Records are
// stable-sorted by date first (ties keep insertion order) so the returned
// buckets are in chronological order; front-ends may rely on that.
func (l *Ledger) Trend() []core.MonthTotal {
	sorted := append([]core.ExpenseRecord(nil), l.records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})

	index := make(map[string]int)
	var buckets []core.MonthTotal
	for _, rec := range sorted {
		key := rec.Date.Bucket()
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, core.MonthTotal{Month: key})
		}
		buckets[i].Total = buckets[i].Total.Add(rec.Amount)
	}
	return buckets
}

// ListAll returns a copy of the record set in insertion order. Mutating
// the returned slice does not affect the ledger.
func (l *Ledger) ListAll() []core.ExpenseRecord {
	return append([]core.ExpenseRecord(nil), l.records...)
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	return len(l.records)
}
