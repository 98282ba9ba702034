package lifestock

import (
	"time"

	"github.com/shopspring/decimal"
)

// d is a helper for test to create decimals from const.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ts is a helper for test to parse a timestamp in DateFormat.
func ts(s string) time.Time {
	t, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

// day is a helper for test to create a record with only the interesting fields set.
func day(on string, spending, sleep, study, change, price string) Record {
	return NewRecord(ts(on), Inputs{
		Spending: d(spending),
		Sleep:    d(sleep),
		Study:    d(study),
		Weight:   d("70"),
	}, d(price), d(change), nil)
}

func ptr(s string) *string { return &s }
