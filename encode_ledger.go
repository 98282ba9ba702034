package lifestock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonRecord is the JSONL representation of a Record. Keys follow Columns.
type jsonRecord struct {
	Date      string          `json:"date"`
	Spending  decimal.Decimal `json:"spending"`
	Income    decimal.Decimal `json:"income"`
	Sleep     decimal.Decimal `json:"sleep"`
	Study     decimal.Decimal `json:"study"`
	Weight    decimal.Decimal `json:"weight"`
	Diary     string          `json:"diary"`
	Change    decimal.Decimal `json:"change"`
	Price     decimal.Decimal `json:"price"`
	AIComment *string         `json:"ai_comment"`
}

// MarshalJSON writes keys in the persisted column order and omits the commentary
// when there is none.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date())
	w.Append("spending", r.Spending)
	w.Append("income", r.Income)
	w.Append("sleep", r.Sleep)
	w.Append("study", r.Study)
	w.Append("weight", r.Weight)
	w.Append("diary", r.Diary)
	w.Append("change", r.Change)
	w.Append("price", r.Price)
	w.Optional("ai_comment", r.Commentary)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes a record, "ai_comment" may be missing or null.
func (r *Record) UnmarshalJSON(data []byte) error {
	var j jsonRecord
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	on, err := ParseTimestamp(j.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", j.Date, err)
	}
	*r = Record{
		Timestamp: on,
		Inputs: Inputs{
			Spending: j.Spending,
			Income:   j.Income,
			Sleep:    j.Sleep,
			Study:    j.Study,
			Weight:   j.Weight,
			Diary:    j.Diary,
		},
		Change: j.Change,
		Price:  j.Price,
	}
	if j.AIComment != nil && *j.AIComment != "" {
		r.Commentary = j.AIComment
	}
	return r.Validate()
}

// DecodeLedger decodes records from a stream of JSONL data, one record per line.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // diaries can be long
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec Record
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return NewLedger(records...), nil
}

// EncodeRecord marshals a single record followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger writes all records to w in JSONL format, in ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, r := range l.Records() {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}
