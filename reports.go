package lifestock

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard view of a ledger.
type Summary struct {
	Records    int
	First      time.Time
	Last       time.Time
	Price      decimal.Decimal // latest price
	Change     Percent         // latest change
	Low        decimal.Decimal
	High       decimal.Decimal
	Return     Percent // from the first to the latest price
	TotalStudy decimal.Decimal
	Spending   Money
	Income     Money
	Commentary string
}

// NewSummary computes the summary of l, amounts are expressed in currency cur.
func NewSummary(l *Ledger, cur string) *Summary {
	s := &Summary{
		Spending:   M(decimal.Zero, cur),
		Income:     M(decimal.Zero, cur),
		TotalStudy: l.TotalStudy(),
		Commentary: l.LatestCommentary(),
		Records:    l.Len(),
	}
	last, ok := l.Last()
	if !ok {
		s.Price = GenesisPrice
		s.Low, s.High = GenesisPrice, GenesisPrice
		return s
	}
	first := l.At(0)
	s.First, s.Last = first.Timestamp, last.Timestamp
	s.Price, s.Change = last.Price, P(last.Change)
	s.Low, s.High = first.Price, first.Price
	for _, r := range l.Records() {
		s.Low = decimal.Min(s.Low, r.Price)
		s.High = decimal.Max(s.High, r.Price)
		s.Spending = s.Spending.Add(M(r.Spending, cur))
		s.Income = s.Income.Add(M(r.Income, cur))
	}
	if first.Price.IsPositive() {
		s.Return = P(last.Price.Div(first.Price).Sub(decimal.NewFromInt(1)).Mul(hundred))
	}
	return s
}

// HistoryEntry is one point of the price series.
type HistoryEntry struct {
	ID     int
	Date   time.Time
	Price  decimal.Decimal
	Change Percent
}

// History is the price time series of a ledger.
type History struct {
	Entries []HistoryEntry
}

// NewHistory returns the price series of l, in ledger order.
func NewHistory(l *Ledger) *History {
	h := &History{Entries: make([]HistoryEntry, 0, l.Len())}
	for i, r := range l.Records() {
		h.Entries = append(h.Entries, HistoryEntry{ID: i, Date: r.Timestamp, Price: r.Price, Change: P(r.Change)})
	}
	return h
}
