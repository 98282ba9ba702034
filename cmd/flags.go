package cmd

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// decimalFlag is a flag.Value holding a decimal number.
type decimalFlag struct {
	value decimal.Decimal
	set   bool
}

func (d *decimalFlag) String() string {
	if d == nil {
		return "0"
	}
	return d.value.String()
}

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	d.value, d.set = v, true
	return nil
}

// clamp limits d to [min, max].
func clamp(d decimal.Decimal, min, max int64) decimal.Decimal {
	return decimal.Min(decimal.Max(d, decimal.NewFromInt(min)), decimal.NewFromInt(max))
}

// parseIDs parses positional record ids.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid record id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
