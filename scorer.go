package lifestock

import "github.com/shopspring/decimal"

// PriceScale is the number of decimal places kept on a price.
//
// Rounding bounds the size of the price series, at a cost: a change moving the
// price by less than half of 10^-PriceScale is lost. From a price of 1 upward any
// change of at least 0.0001% shows in the price, below that a non zero change may
// leave the price unchanged. Rounding never brings a positive price to zero since
// a day can lose at most 2.5%.
const PriceScale = 6

var (
	hundred = decimal.NewFromInt(100)

	studyRate    = decimal.RequireFromString("0.5") // per hour of study
	shortSleep   = decimal.NewFromInt(6)
	longSleep    = decimal.RequireFromString("7.5")
	sleepPenalty = decimal.NewFromInt(2)
	sleepBonus   = decimal.RequireFromString("0.5")
	bigSpending  = decimal.NewFromInt(500)
	spendPenalty = decimal.RequireFromString("0.5")
	frugalBonus  = decimal.RequireFromString("0.2")
)

// Score computes the change in percent implied by one day of inputs and applies
// it to the last price.
//
// The rules are:
//   - each hour of study adds 0.5%, with no cap;
//   - less than 6 hours of sleep removes 2%, at least 7.5 hours adds 0.5%;
//   - spending more than 500 removes 0.5%, spending nothing adds 0.2%.
//
// Score accepts any value, range checks are the caller's business.
func Score(last, spending, sleep, study decimal.Decimal) (price, change decimal.Decimal) {
	change = decimal.Zero
	if study.IsPositive() {
		change = change.Add(study.Mul(studyRate))
	}

	switch {
	case sleep.LessThan(shortSleep):
		change = change.Sub(sleepPenalty)
	case sleep.GreaterThanOrEqual(longSleep):
		change = change.Add(sleepBonus)
	}

	switch {
	case spending.GreaterThan(bigSpending):
		change = change.Sub(spendPenalty)
	case spending.IsZero():
		change = change.Add(frugalBonus)
	}

	factor := decimal.NewFromInt(1).Add(change.Div(hundred))
	price = last.Mul(factor).Round(PriceScale)
	return price, change
}

// ScoreInputs is a convenience wrapper around Score for a day of inputs.
func ScoreInputs(last decimal.Decimal, in Inputs) (price, change decimal.Decimal) {
	return Score(last, in.Spending, in.Sleep, in.Study)
}
