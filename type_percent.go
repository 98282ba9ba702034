package lifestock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage, 2.5 means 2.5%.
type Percent float64

// P converts a decimal percentage.
func P(d decimal.Decimal) Percent { return Percent(d.InexactFloat64()) }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString always prints the sign, and "-" for a null change.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
