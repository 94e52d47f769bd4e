package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is an amount in minor units (paise). Orders carry a single currency,
// so no currency code is stored.
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", minor))
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

// Multiply returns the amount times a non-negative quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{minor: m.minor * int64(quantity)}
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// String formats the amount with two decimals, e.g. "1000.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/100, m.minor%100)
}
