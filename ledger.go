package lifestock

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger represents the ordered list of archived records.
//
// In a Ledger, insertion order is chronological order. Records are identified by
// their zero-based position. A Ledger is treated as a value: Append and
// DeleteByIDs return a new Ledger and leave the receiver untouched.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger holding the given records, in that order.
func NewLedger(records ...Record) *Ledger {
	return &Ledger{records: slices.Clone(records)}
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// IsEmpty reports whether the ledger has no record.
func (l *Ledger) IsEmpty() bool { return l.Len() == 0 }

// At returns the record at position i. It panics if i is out of range.
func (l *Ledger) At(i int) Record { return l.records[i] }

// Last returns the most recent record, false if the ledger is empty.
func (l *Ledger) Last() (Record, bool) {
	if l.IsEmpty() {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// Records iterates over records with their position.
func (l *Ledger) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if l == nil {
			return
		}
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Append returns a new ledger with r added at the end.
func (l *Ledger) Append(r Record) *Ledger {
	n := l.Len()
	records := make([]Record, n, n+1)
	if n > 0 {
		copy(records, l.records)
	}
	return &Ledger{records: append(records, r)}
}

// DeleteByIDs returns a new ledger without the records at the given positions.
//
// Remaining records are renumbered contiguously from 0. Positions out of range
// are ignored. Prices and changes of the remaining records are kept as they are:
// a deletion corrects the log, it does not rebase the derived values.
func (l *Ledger) DeleteByIDs(ids ...int) *Ledger {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	records := make([]Record, 0, l.Len())
	for i, r := range l.Records() {
		if !drop[i] {
			records = append(records, r)
		}
	}
	return &Ledger{records: records}
}

// LastPrice returns the price of the most recent record, or GenesisPrice for an empty ledger.
func (l *Ledger) LastPrice() decimal.Decimal {
	last, ok := l.Last()
	if !ok {
		return GenesisPrice
	}
	return last.Price
}

// TotalStudy returns the cumulated hours of study.
func (l *Ledger) TotalStudy() decimal.Decimal {
	total := decimal.Zero
	for _, r := range l.Records() {
		total = total.Add(r.Study)
	}
	return total
}

// LatestCommentary returns the commentary of the most recent record, or NoCommentary.
func (l *Ledger) LatestCommentary() string {
	last, ok := l.Last()
	if !ok || last.Comment() == "" {
		return NoCommentary
	}
	return last.Comment()
}

// Equal reports whether both ledgers hold equal records in the same order.
func (l *Ledger) Equal(m *Ledger) bool {
	if l.Len() != m.Len() {
		return false
	}
	for i, r := range l.Records() {
		if !r.Equal(m.At(i)) {
			return false
		}
	}
	return true
}
