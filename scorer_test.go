package lifestock

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		name                   string
		last                   string
		spending, sleep, study string
		wantChange, wantPrice  string
	}{
		{"neutral day", "100", "100", "7", "0", "0", "100"},
		{"long sleep frugal", "100", "0", "8", "0", "0.7", "100.7"},
		{"short sleep big spending", "100", "501", "5", "0", "-2.5", "97.5"},
		{"archive scenario", "100", "0", "8", "3", "2.2", "102.2"},
		{"twelve hours study", "100", "100", "7", "12", "6", "106"},
		{"sleep lower bound", "100", "100", "6", "0", "0", "100"},
		{"sleep upper bound", "100", "100", "7.5", "0", "0.5", "100.5"},
		{"spending upper bound", "100", "500", "7", "0", "0", "100"},
		{"negative spending", "100", "-10", "7", "0", "0", "100"},
		{"negative study", "100", "100", "7", "-3", "0", "100"},
		{"compounding", "102.2", "0", "8", "1", "1.2", "103.4264"},
		{"rounding", "100", "1", "7", "0.333", "0.1665", "100.1665"},
		{"rounded to scale", "3.333333", "1", "7", "1", "0.5", "3.35"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, change := Score(d(tc.last), d(tc.spending), d(tc.sleep), d(tc.study))
			if !change.Equal(d(tc.wantChange)) {
				t.Errorf("change = %v, want %v", change, tc.wantChange)
			}
			if !price.Equal(d(tc.wantPrice)) {
				t.Errorf("price = %v, want %v", price, tc.wantPrice)
			}
		})
	}
}

func TestScoreLongSleepFrugalNoStudy(t *testing.T) {
	for _, sleep := range []string{"7.5", "8", "9.25", "12", "24"} {
		_, change := Score(GenesisPrice, decimal.Zero, d(sleep), decimal.Zero)
		if !change.Equal(d("0.7")) {
			t.Errorf("sleep %s: change = %v, want 0.7", sleep, change)
		}
	}
}

func TestScoreShortSleepBigSpending(t *testing.T) {
	for _, sleep := range []string{"0", "3", "5.99"} {
		for _, spending := range []string{"500.01", "1000", "99999"} {
			_, change := Score(GenesisPrice, d(spending), d(sleep), decimal.Zero)
			if !change.Equal(d("-2.5")) {
				t.Errorf("sleep %s spending %s: change = %v, want -2.5", sleep, spending, change)
			}
		}
	}
}

func TestScoreMonotonicInStudy(t *testing.T) {
	previous := decimal.Zero
	for i, study := range []string{"0", "0.5", "1", "2.25", "6", "12"} {
		_, change := Score(GenesisPrice, d("42"), d("6.5"), d(study))
		if i > 0 && !change.GreaterThan(previous) {
			t.Errorf("study %s: change %v is not greater than %v", study, change, previous)
		}
		previous = change
	}
}

func TestScoreUnchangedPrice(t *testing.T) {
	testCases := []struct {
		spending, sleep, study string
		same                   bool
	}{
		{"0.01", "6", "0", true},
		{"500", "7.49", "0", true},
		{"0", "6", "0", false},
		{"100", "7.5", "0", false},
		{"100", "7", "0.1", false},
		{"501", "7", "0", false},
	}
	for _, tc := range testCases {
		last := d("123.456")
		price, change := Score(last, d(tc.spending), d(tc.sleep), d(tc.study))
		if got := price.Equal(last); got != tc.same || got != change.IsZero() {
			t.Errorf("Score(%s, %s, %s) = %v, %v: unchanged price %v, want %v", tc.spending, tc.sleep, tc.study, price, change, got, tc.same)
		}
	}
}

func TestScorePriceScale(t *testing.T) {
	testCases := []struct {
		name              string
		last, study       string
		wantChange, price string
	}{
		{"smallest visible change at 1", "1", "0.0002", "0.0001", "1.000001"},
		{"smallest visible change at 100", "100", "0.0002", "0.0001", "100.0001"},
		{"change lost on a tiny price", "0.000001", "0.1", "0.05", "0.000001"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, change := Score(d(tc.last), d("100"), d("7"), d(tc.study))
			if !change.Equal(d(tc.wantChange)) || !price.Equal(d(tc.price)) {
				t.Errorf("Score(%s) = %v (%v%%), want %s (%s%%)", tc.last, price, change, tc.price, tc.wantChange)
			}
		})
	}
}

func TestScoreStaysPositive(t *testing.T) {
	last := d("0.000001")
	for range 100 {
		last, _ = Score(last, d("501"), d("5"), decimal.Zero)
		if !last.IsPositive() {
			t.Fatalf("price dropped to %v", last)
		}
	}
}
