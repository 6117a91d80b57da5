package pricing

import (
	"fmt"
	"math"
)

// Money is an amount in cents of the single sale currency.
type Money int64

func FromCents(c int64) Money {
	return Money(c)
}

// FromDecimal converts currency units to cents, rounding half away from zero
// at the second decimal.
func FromDecimal(v float64) Money {
	return Money(math.Round(v * 100))
}

// Ptr returns a pointer to a copy of m, for optional overrides.
func (m Money) Ptr() *Money {
	return &m
}

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Decimal() float64 {
	return float64(m) / 100
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) Add(o Money) Money {
	return m + o
}

func (m Money) Mul(n int) Money {
	return m * Money(n)
}

// String renders two fixed decimals, e.g. "152.50".
func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func Sum(items ...Money) Money {
	var total Money
	for _, m := range items {
		total += m
	}
	return total
}
