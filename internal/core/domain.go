package core

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for dates, both on disk and at the prompt.
const DateLayout = "01/02/2006"

// BucketLayout is the year-month key used by the monthly trend.
const BucketLayout = "2006-01"

type (
	// Date is a calendar date with day resolution. Time-of-day is always
	// zero; two records entered the same day compare equal.
	Date struct {
		time.Time
	}

	// Money is an exact amount in minor currency units (cents).
	Money struct {
		Cents int64
	}

	// ExpenseRecord is one user-entered expense. Records are immutable
	// once entered; Category is the grouping key, used verbatim.
	ExpenseRecord struct {
		Category string
		Amount   Money
		Note     string
		Date     Date
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a MM/DD/YYYY string. Parsing is strict: out-of-range
// components are rejected rather than rolled over.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date back to MM/DD/YYYY.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Bucket returns the YYYY-MM trend bucket key for the date.
func (d Date) Bucket() string {
	return d.Format(BucketLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

func (r ExpenseRecord) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	return nil
}
