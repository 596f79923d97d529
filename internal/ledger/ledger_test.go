package ledger

import (
	"context"
	"errors"
	"testing"

	"tally/internal/core"
	"tally/internal/storage/memory"
)

func rec(category string, cents int64, note string, year, month, day int) core.ExpenseRecord {
	return core.ExpenseRecord{
		Category: category,
		Amount:   core.Money{Cents: cents},
		Note:     note,
		Date:     core.NewDate(year, month, day),
	}
}

// seed enters the worked three-record data set: lunch, coffee, rent.
func seed(t *testing.T, l *Ledger) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []core.ExpenseRecord{
		rec("food", 1250, "lunch", 2024, 1, 15),
		rec("food", 300, "coffee", 2024, 2, 1),
		rec("rent", 150000, "", 2024, 1, 1),
	} {
		if err := l.Enter(ctx, r); err != nil {
			t.Fatalf("enter %v: %v", r, err)
		}
	}
}

func TestEmptyLedger(t *testing.T) {
	l := New(context.Background(), nil, nil)

	if got := l.Total(); got.Cents != 0 {
		t.Fatalf("expected 0 total, got %d", got.Cents)
	}
	if got := l.TotalByCategory(); len(got) != 0 {
		t.Fatalf("expected no category totals, got %v", got)
	}
	if _, ok := l.MostExpensiveCategory(); ok {
		t.Fatalf("expected no most expensive category")
	}
	if _, ok := l.LeastExpensiveCategory(); ok {
		t.Fatalf("expected no least expensive category")
	}
	if got := l.Trend(); len(got) != 0 {
		t.Fatalf("expected no trend buckets, got %v", got)
	}
	if got := l.ListAll(); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}

func TestAggregations(t *testing.T) {
	l := New(context.Background(), nil, nil)
	seed(t, l)

	if got := l.Total(); got.Cents != 154050 {
		t.Fatalf("expected total 154050, got %d", got.Cents)
	}

	byCat := l.TotalByCategory()
	if len(byCat) != 2 || byCat["food"].Cents != 1550 || byCat["rent"].Cents != 150000 {
		t.Fatalf("unexpected category totals: %v", byCat)
	}

	if got, ok := l.MostExpensiveCategory(); !ok || got != "rent" {
		t.Fatalf("expected most expensive rent, got %q (ok=%v)", got, ok)
	}
	if got, ok := l.LeastExpensiveCategory(); !ok || got != "food" {
		t.Fatalf("expected least expensive food, got %q (ok=%v)", got, ok)
	}

	trend := l.Trend()
	if len(trend) != 2 {
		t.Fatalf("expected 2 trend buckets, got %v", trend)
	}
	if trend[0].Month != "2024-01" || trend[0].Total.Cents != 151250 {
		t.Fatalf("unexpected first bucket: %+v", trend[0])
	}
	if trend[1].Month != "2024-02" || trend[1].Total.Cents != 300 {
		t.Fatalf("unexpected second bucket: %+v", trend[1])
	}
}

func TestCategoryTotalsSumToTotal(t *testing.T) {
	l := New(context.Background(), nil, nil)
	seed(t, l)

	var sum int64
	for _, total := range l.TotalByCategory() {
		sum += total.Cents
	}
	if sum != l.Total().Cents {
		t.Fatalf("category totals sum %d != total %d", sum, l.Total().Cents)
	}

	sum = 0
	for _, bucket := range l.Trend() {
		sum += bucket.Total.Cents
	}
	if sum != l.Total().Cents {
		t.Fatalf("trend totals sum %d != total %d", sum, l.Total().Cents)
	}
}

func TestTrendChronologicalAcrossYears(t *testing.T) {
	ctx := context.Background()
	l := New(ctx, nil, nil)
	// Entered out of chronological order on purpose
	for _, r := range []core.ExpenseRecord{
		rec("a", 100, "", 2024, 3, 1),
		rec("b", 200, "", 2023, 12, 31),
		rec("c", 300, "", 2024, 3, 15),
		rec("d", 400, "", 2024, 1, 2),
	} {
		if err := l.Enter(ctx, r); err != nil {
			t.Fatalf("enter: %v", err)
		}
	}
	want := []struct {
		month string
		cents int64
	}{
		{"2023-12", 200},
		{"2024-01", 400},
		{"2024-03", 400},
	}
	trend := l.Trend()
	if len(trend) != len(want) {
		t.Fatalf("expected %d buckets, got %v", len(want), trend)
	}
	for i, w := range want {
		if trend[i].Month != w.month || trend[i].Total.Cents != w.cents {
			t.Fatalf("bucket %d: expected %v, got %+v", i, w, trend[i])
		}
	}
}

func TestExtremesTieBreakFirstEntered(t *testing.T) {
	ctx := context.Background()
	l := New(ctx, nil, nil)
	for _, r := range []core.ExpenseRecord{
		rec("beta", 500, "", 2024, 1, 1),
		rec("alpha", 500, "", 2024, 1, 2),
	} {
		if err := l.Enter(ctx, r); err != nil {
			t.Fatalf("enter: %v", err)
		}
	}
	// Both categories tie at 500; the first entered wins on both ends.
	if got, _ := l.MostExpensiveCategory(); got != "beta" {
		t.Fatalf("expected beta, got %q", got)
	}
	if got, _ := l.LeastExpensiveCategory(); got != "beta" {
		t.Fatalf("expected beta, got %q", got)
	}
}

func TestEnterRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	l := New(ctx, nil, nil)

	bads := []core.ExpenseRecord{
		rec("", 100, "", 2024, 1, 1),
		rec("food", -1, "", 2024, 1, 1),
		{Category: "food", Amount: core.Money{Cents: 100}},
	}
	for i, r := range bads {
		if err := l.Enter(ctx, r); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("rejected records must not be stored, have %d", l.Len())
	}
}

func TestEnterPersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	l := New(ctx, store, nil)
	seed(t, l)

	persisted, err := store.Hydrate(ctx)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(persisted) != 3 {
		t.Fatalf("expected 3 persisted records, got %d", len(persisted))
	}

	// A new ledger over the same store sees the data.
	reloaded := New(ctx, store, nil)
	if reloaded.Total().Cents != 154050 {
		t.Fatalf("expected reloaded total 154050, got %d", reloaded.Total().Cents)
	}
}

type failingStore struct{ fail bool }

func (f *failingStore) Hydrate(context.Context) ([]core.ExpenseRecord, error) {
	return nil, nil
}

func (f *failingStore) Persist(context.Context, []core.ExpenseRecord) error {
	if f.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestPersistFailureKeepsAppend(t *testing.T) {
	ctx := context.Background()
	l := New(ctx, &failingStore{fail: true}, nil)

	err := l.Enter(ctx, rec("food", 100, "", 2024, 1, 1))
	if err == nil {
		t.Fatalf("expected persist error")
	}
	// The in-memory append is not rolled back.
	if l.Len() != 1 || l.Total().Cents != 100 {
		t.Fatalf("expected record retained in memory, len=%d", l.Len())
	}
}

func TestHydrateFailureStartsEmpty(t *testing.T) {
	broken := &brokenHydrateStore{}
	l := New(context.Background(), broken, nil)
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger after hydrate failure")
	}
	// The ledger still works after the failed load.
	if err := l.Enter(context.Background(), rec("food", 100, "", 2024, 1, 1)); err != nil {
		t.Fatalf("enter after failed hydrate: %v", err)
	}
}

type brokenHydrateStore struct{}

func (b *brokenHydrateStore) Hydrate(context.Context) ([]core.ExpenseRecord, error) {
	return nil, errors.New("permission denied")
}

func (b *brokenHydrateStore) Persist(context.Context, []core.ExpenseRecord) error {
	return nil
}

func TestListAllIsACopy(t *testing.T) {
	l := New(context.Background(), nil, nil)
	seed(t, l)

	listed := l.ListAll()
	listed[0].Category = "tampered"
	listed[0].Amount = core.Money{Cents: 0}

	if got := l.ListAll()[0]; got.Category != "food" || got.Amount.Cents != 1250 {
		t.Fatalf("ledger internals mutated through ListAll: %+v", got)
	}
}
