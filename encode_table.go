package lifestock

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Columns is the tabular schema of a ledger, in persisted order.
var Columns = []string{"date", "spending", "income", "sleep", "study", "weight", "diary", "change", "price", "ai_comment"}

// columns that must be present in a table header. "ai_comment" was added later,
// older tables don't have it.
var requiredColumns = Columns[:len(Columns)-1]

// DecodeTable decodes a grid of cells whose first row is the header.
//
// Columns are matched by name, so their order does not matter. An empty grid is an
// empty ledger.
func DecodeTable(rows [][]string) (*Ledger, error) {
	if len(rows) == 0 {
		return NewLedger(), nil
	}
	index := make(map[string]int)
	for i, name := range rows[0] {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header %q", name, rows[0])
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		r, err := decodeRow(index, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return NewLedger(records...), nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// decodeRow decodes a single row using the header index.
func decodeRow(index map[string]int, row []string) (r Record, err error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	// number decodes a numeric cell, an empty optional cell is zero.
	number := func(name string, required bool) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		s := cell(name)
		if s == "" {
			if required {
				err = fmt.Errorf("missing %s", name)
			}
			return decimal.Zero
		}
		d, e := decimal.NewFromString(s)
		if e != nil {
			err = fmt.Errorf("invalid %s %q: %w", name, s, e)
		}
		return d
	}

	r.Timestamp, err = ParseTimestamp(cell("date"))
	if err != nil {
		return r, fmt.Errorf("invalid date %q: %w", cell("date"), err)
	}
	r.Spending = number("spending", false)
	r.Income = number("income", false)
	r.Sleep = number("sleep", false)
	r.Study = number("study", false)
	r.Weight = number("weight", false)
	r.Change = number("change", true)
	r.Price = number("price", true)
	if err != nil {
		return r, err
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	if i, ok := index["diary"]; ok && i < len(row) {
		r.Diary = row[i] // kept verbatim
	}
	if comment := cell("ai_comment"); comment != "" {
		r.Commentary = &comment
	}
	return r, nil
}

// EncodeTable returns the ledger as a grid of cells, header first.
func EncodeTable(l *Ledger) [][]string {
	rows := make([][]string, 0, l.Len()+1)
	rows = append(rows, Columns)
	for _, r := range l.Records() {
		rows = append(rows, []string{
			r.Date(),
			r.Spending.String(),
			r.Income.String(),
			r.Sleep.String(),
			r.Study.String(),
			r.Weight.String(),
			r.Diary,
			r.Change.String(),
			r.Price.String(),
			r.Comment(),
		})
	}
	return rows
}

// DecodeCSV decodes a ledger from a CSV stream with a header row.
func DecodeCSV(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // older rows may lack the trailing ai_comment
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	return DecodeTable(rows)
}

// EncodeCSV writes the ledger as CSV with a header row.
func EncodeCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(EncodeTable(l)); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}
