package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is an immutable monetary value normalized to the minor currency unit.
// Construction and every arithmetic operation re-round the result half-up to
// two decimal places, so ordering and equality always agree with minor-unit
// comparison.
type Money struct {
	value decimal.Decimal
}

// normalize rounds half-up to the minor unit and pins the exponent, so equal
// amounts always share one representation.
func normalize(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Round(0).Shift(-2)
}

func NewMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing money %q: %w", amount, err)
	}
	return Money{value: normalize(d)}, nil
}

// MustMoney is NewMoney for literals. It panics on a malformed amount.
func MustMoney(amount string) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns the zero monetary value.
func ZeroMoney() Money {
	return Money{value: normalize(decimal.Zero)}
}

func (m Money) Add(o Money) Money {
	return Money{value: normalize(m.value.Add(o.value))}
}

func (m Money) Sub(o Money) Money {
	return Money{value: normalize(m.value.Sub(o.value))}
}

// AddPercent adjusts the value by the given percentage. A negative percentage
// is a deduction. The result is re-rounded to the minor unit.
func (m Money) AddPercent(percent float64) Money {
	factor := hundred.Add(decimal.NewFromFloat(percent))
	return Money{value: normalize(m.value.Mul(factor).Div(hundred))}
}

// Cmp returns -1, 0 or 1 comparing the rounded minor-unit values.
func (m Money) Cmp(o Money) int {
	return m.value.Cmp(o.value)
}

func (m Money) LessEqual(o Money) bool {
	return m.Cmp(o) <= 0
}

func (m Money) Equal(o Money) bool {
	return m.Cmp(o) == 0
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

func (m Money) String() string {
	return m.value.StringFixed(2)
}
