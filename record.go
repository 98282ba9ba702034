package lifestock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the format used to persist a record's timestamp.
const DateFormat = "2006-01-02 15:04"

// GenesisPrice is the price of the very first record of a ledger.
var GenesisPrice = decimal.NewFromInt(100)

// GenesisCommentary is the commentary attached to the genesis record.
const GenesisCommentary = "System initialised, waiting for the first day of data..."

// NoCommentary is displayed when the latest record has no commentary.
const NoCommentary = "No report yet"

// Inputs are the raw metrics entered for one day.
type Inputs struct {
	Spending decimal.Decimal // amount spent, non negative
	Income   decimal.Decimal // amount earned, non negative
	Sleep    decimal.Decimal // hours of sleep
	Study    decimal.Decimal // hours of study
	Weight   decimal.Decimal // body weight
	Diary    string          // free text, may be empty
}

// Record is one archived day: the raw inputs plus the derived change and price.
//
// A Record is never edited once appended to a Ledger.
type Record struct {
	Timestamp time.Time
	Inputs
	Change     decimal.Decimal // signed percentage applied to the previous price
	Price      decimal.Decimal // synthetic progress price, always positive
	Commentary *string         // nil when absent
}

// NewRecord composes a record from the inputs and the scoring result.
func NewRecord(on time.Time, in Inputs, price, change decimal.Decimal, commentary *string) Record {
	return Record{
		Timestamp:  on.Truncate(time.Minute),
		Inputs:     in,
		Change:     change,
		Price:      price,
		Commentary: commentary,
	}
}

// Seed returns the genesis record of a ledger, stamped at 'on'.
func Seed(on time.Time) Record {
	comment := GenesisCommentary
	return NewRecord(on, Inputs{
		Spending: decimal.Zero,
		Income:   decimal.Zero,
		Sleep:    decimal.NewFromInt(7),
		Study:    decimal.Zero,
		Weight:   decimal.RequireFromString("70.5"),
		Diary:    "System Init",
	}, GenesisPrice, decimal.Zero, &comment)
}

// Comment returns the commentary text, or "" if there is none.
func (r Record) Comment() string {
	if r.Commentary == nil {
		return ""
	}
	return *r.Commentary
}

// Date returns the timestamp in the persisted format.
func (r Record) Date() string { return r.Timestamp.Format(DateFormat) }

// Equal reports whether r and s hold the same values.
func (r Record) Equal(s Record) bool {
	return r.Timestamp.Equal(s.Timestamp) &&
		r.Spending.Equal(s.Spending) &&
		r.Income.Equal(s.Income) &&
		r.Sleep.Equal(s.Sleep) &&
		r.Study.Equal(s.Study) &&
		r.Weight.Equal(s.Weight) &&
		r.Diary == s.Diary &&
		r.Change.Equal(s.Change) &&
		r.Price.Equal(s.Price) &&
		r.Comment() == s.Comment() // an empty commentary is no commentary
}

// Validate checks the invariants of a persisted record: a price is always positive.
func (r Record) Validate() error {
	if !r.Price.IsPositive() {
		return fmt.Errorf("price %v is not positive", r.Price)
	}
	return nil
}

// ParseTimestamp parses a timestamp in the persisted format.
//
// Plain dates (without time) are also accepted, older tables were written that way.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.ParseInLocation(time.DateOnly, s, time.Local); err2 == nil {
		return t, nil
	}
	return time.Time{}, err
}
