// Package ledger stores the per-year results of a projection run.
//
// A Ledger is append-only and keeps insertion order. Its backing buffer grows
// geometrically: the first append allocates InitialCapacity slots and every
// later growth doubles the previous capacity, so N appends cost O(N) copies in
// total and, once more than InitialCapacity records are stored, the buffer
// stays below twice the occupied length. A Ledger is owned by a single projection run and is not
// safe for concurrent use.
package ledger

import (
	"fmt"
	"io"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

const InitialCapacity = 8

type Ledger struct {
	entries   []domain.YearRecord
	startYear int
}

type Option func(*Ledger)

// WithStartYear sets the display year of the first record.
func WithStartYear(year int) Option {
	return func(l *Ledger) {
		l.startYear = year
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds a record at the end of the ledger.
func (l *Ledger) Append(record domain.YearRecord) {
	if len(l.entries) == cap(l.entries) {
		l.grow()
	}
	l.entries = append(l.entries, record)
}

func (l *Ledger) grow() {
	size := InitialCapacity
	if c := cap(l.entries); c > 0 {
		size = c * 2
	}
	entries := make([]domain.YearRecord, len(l.entries), size)
	copy(entries, l.entries)
	l.entries = entries
}

// Len is the number of stored records.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Cap is the size of the backing buffer.
func (l *Ledger) Cap() int {
	return cap(l.entries)
}

func (l *Ledger) StartYear() int {
	return l.startYear
}

// At returns the record at position i.
func (l *Ledger) At(i int) (domain.YearRecord, bool) {
	if i < 0 || i >= len(l.entries) {
		return domain.YearRecord{}, false
	}
	return l.entries[i], true
}

// Records returns a copy of the stored records in insertion order.
func (l *Ledger) Records() []domain.YearRecord {
	records := make([]domain.YearRecord, len(l.entries))
	copy(records, l.entries)
	return records
}

// Rows returns the stored records labelled with startYear + position.
func (l *Ledger) Rows() []domain.YearRow {
	rows := make([]domain.YearRow, 0, len(l.entries))
	for i, record := range l.entries {
		rows = append(rows, domain.YearRow{Year: l.startYear + i, YearRecord: record})
	}
	return rows
}

// PrintAll writes one line per stored record:
// year, total, growth, interest earned and contribution.
func (l *Ledger) PrintAll(w io.Writer) error {
	for _, row := range l.Rows() {
		_, err := fmt.Fprintf(w, "%5d: %5.2f || %5.2f || %5.2f || %5.2f\n",
			row.Year, row.Total, row.Growth(), row.InterestEarned, row.Contribution)
		if err != nil {
			return fmt.Errorf("failed to print year %d: %w", row.Year, err)
		}
	}
	return nil
}
