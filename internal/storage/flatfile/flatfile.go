// Package flatfile implements the ledger's flat-file storage strategy.
//
// The on-disk format is one record per line:
//
//	<category>,<amount int cents>,<note>,<MM/DD/YYYY>
//
// There is no header and no quoting: an embedded comma in category or note
// corrupts that line on the next load. This is a known limitation of the
// format, kept for compatibility with existing files.
package flatfile

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"tally/internal/core"
)

// DefaultFileName is the store location used when none is configured.
const DefaultFileName = "expenses.csv"

const fieldCount = 4

// Store persists the ledger to a single flat file.
type Store struct {
	path string
}

// New creates a flat-file store at path. The file itself is created lazily
// on the first Persist; a missing file hydrates as an empty ledger.
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Hydrate reads the file line by line. Lines that do not parse are logged
// and skipped individually; a bad line never aborts the rest of the load.
// A missing file is not an error and yields an empty record set.
func (s *Store) Hydrate(_ context.Context) ([]core.ExpenseRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	var records []core.ExpenseRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			slog.Warn("Skipping invalid expense record",
				"path", s.path, "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	return records, nil
}

// Persist truncates the file and rewrites the full snapshot.
func (s *Store) Persist(_ context.Context, records []core.ExpenseRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := w.WriteString(EncodeLine(rec) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write ledger file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	return nil
}

// EncodeLine serializes one record to its on-disk line. Embedded commas in
// category or note are written verbatim.
func EncodeLine(rec core.ExpenseRecord) string {
	return rec.Category + "," +
		strconv.FormatInt(rec.Amount.Cents, 10) + "," +
		rec.Note + "," +
		rec.Date.String()
}

// ParseLine parses one on-disk line. A line is accepted only if it splits
// into exactly 4 fields, the amount is a base-10 integer and the date is a
// valid MM/DD/YYYY.
func ParseLine(line string) (core.ExpenseRecord, error) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return core.ExpenseRecord{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(parts))
	}
	cents, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("parse amount %q: %w", parts[1], core.ErrInvalidAmount)
	}
	date, err := core.ParseDate(parts[3])
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("parse date %q: %w", parts[3], err)
	}
	return core.ExpenseRecord{
		Category: parts[0],
		Amount:   core.Money{Cents: cents},
		Note:     parts[2],
		Date:     date,
	}, nil
}
