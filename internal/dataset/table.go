// Package dataset loads the traffic-stop file into an immutable in-memory
// table. It replaces a persistence layer: the table is built once and every
// query reads it without locking.
package dataset

import (
	"iter"
	"slices"

	"github.com/pkordes/securecheck/internal/domain"
)

// Table is a read-only set of StopRecords together with the columns that
// were present in the source. It has no mutators and rows are handed out as
// deep copies, so a Table may be shared between goroutines.
type Table struct {
	fields []string
	has    map[string]bool
	rows   []domain.StopRecord
}

// New builds a Table from rows already in memory. fields names the columns
// the rows carry; columns not listed are treated as absent by Require.
// rows is deep-copied.
func New(fields []string, rows []domain.StopRecord) *Table {
	t := &Table{
		fields: slices.Clone(fields),
		has:    make(map[string]bool, len(fields)),
		rows:   make([]domain.StopRecord, len(rows)),
	}
	for i, r := range rows {
		t.rows[i] = r.Clone()
	}
	for _, f := range fields {
		t.has[f] = true
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Has reports whether the source carried the named column.
func (t *Table) Has(field string) bool { return t.has[field] }

// Fields returns the known columns present in the source, in header order.
func (t *Table) Fields() []string { return slices.Clone(t.fields) }

// Require returns a *domain.MissingFieldError naming the first field in
// fields that the table does not carry.
func (t *Table) Require(fields ...string) error {
	for _, f := range fields {
		if !t.has[f] {
			return &domain.MissingFieldError{Field: f}
		}
	}
	return nil
}

// Row returns a copy of the i-th row.
func (t *Table) Row(i int) domain.StopRecord { return t.rows[i].Clone() }

// All yields every row in file order.
func (t *Table) All() iter.Seq[domain.StopRecord] {
	return func(yield func(domain.StopRecord) bool) {
		for _, r := range t.rows {
			if !yield(r.Clone()) {
				return
			}
		}
	}
}
