package client

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DollarsToCents parses a dollar amount such as "12.34" into cents.
func DollarsToCents(amount string) (uint32, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(decimal.NewFromInt(math.MaxUint32)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return uint32(cents.IntPart()), nil
}

func FormatCents(cents int64) string {
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
