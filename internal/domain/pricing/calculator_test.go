//go:build unit

package pricing_test

import (
	"testing"

	"seating-service/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func newCalculator() *pricing.Calculator {
	return pricing.NewCalculator(pricing.Defaults{
		BasePrice:     pricing.FromDecimal(85),
		SeatsPerRow:   10,
		RowAdjustment: pricing.FromDecimal(7.5),
		Floor:         pricing.FromDecimal(25),
	})
}

func TestCalculator_Price(t *testing.T) {
	calc := newCalculator()

	tests := []struct {
		name      string
		row       int
		totalRows int
		base      float64
		want      string
	}{
		{name: "front row of ten", row: 1, totalRows: 10, base: 85, want: "152.50"},
		{name: "last row of ten costs base", row: 10, totalRows: 10, base: 85, want: "85.00"},
		{name: "middle row", row: 5, totalRows: 10, base: 85, want: "122.50"},
		{name: "single row below floor", row: 1, totalRows: 1, base: 10, want: "25.00"},
		{name: "zero total rows treated as one", row: 1, totalRows: 0, base: 120, want: "120.00"},
		{name: "overflow row clamps to floor", row: 30, totalRows: 10, base: 85, want: "25.00"},
		{name: "premium section front row", row: 1, totalRows: 6, base: 160, want: "197.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Price(tt.row, tt.totalRows, pricing.FromDecimal(tt.base), pricing.Rules{})
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCalculator_MonotonicAndFloored(t *testing.T) {
	calc := newCalculator()
	floor := pricing.FromDecimal(25)

	for _, base := range []float64{0.01, 10, 24.99, 85, 95, 120, 160} {
		for totalRows := 1; totalRows <= 40; totalRows++ {
			prev := calc.Price(1, totalRows, pricing.FromDecimal(base), pricing.Rules{})
			for row := 1; row <= totalRows; row++ {
				p := calc.Price(row, totalRows, pricing.FromDecimal(base), pricing.Rules{})
				assert.GreaterOrEqual(t, p, floor, "base=%v rows=%d row=%d", base, totalRows, row)
				assert.LessOrEqual(t, p, prev, "base=%v rows=%d row=%d", base, totalRows, row)
				prev = p
			}
		}
	}
}

func TestCalculator_RuleOverrides(t *testing.T) {
	calc := newCalculator()
	rules := pricing.Rules{RowAdjustment: pricing.FromDecimal(10).Ptr(), Floor: pricing.FromDecimal(50).Ptr()}

	assert.Equal(t, "130.00", calc.Price(1, 5, pricing.FromDecimal(90), rules).String())
	assert.Equal(t, "50.00", calc.Price(5, 5, pricing.FromDecimal(40), rules).String())
}

func TestCalculator_ZeroOverridesAreHonored(t *testing.T) {
	calc := newCalculator()

	t.Run("zero row adjustment prices every row at the base", func(t *testing.T) {
		flat := pricing.Rules{RowAdjustment: pricing.FromCents(0).Ptr()}
		for row := 1; row <= 4; row++ {
			assert.Equal(t, "60.00", calc.Price(row, 4, pricing.FromDecimal(60), flat).String(), "row %d", row)
		}
	})

	t.Run("zero floor lets overflow rows drop below the default floor", func(t *testing.T) {
		noFloor := pricing.Rules{Floor: pricing.FromCents(0).Ptr()}
		assert.Equal(t, "15.00", calc.Price(3, 1, pricing.FromDecimal(30), noFloor).String())
	})

	t.Run("nil overrides use the defaults", func(t *testing.T) {
		adjustment, floor := calc.Resolve(pricing.Rules{})
		assert.Equal(t, pricing.FromDecimal(7.5), adjustment)
		assert.Equal(t, pricing.FromDecimal(25), floor)
	})
}

func TestFromDecimal_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(13), pricing.FromDecimal(0.125).Cents())
	assert.Equal(t, int64(-13), pricing.FromDecimal(-0.125).Cents())
	assert.Equal(t, int64(750), pricing.FromDecimal(7.5).Cents())
	assert.Equal(t, "-1.05", pricing.FromCents(-105).String())
	assert.Equal(t, "0.00", pricing.Sum().String())
}
