package pricing

// Rules override the calculator defaults for one section. A nil field falls
// back to the default; a zero RowAdjustment prices every row at the base.
type Rules struct {
	RowAdjustment *Money
	Floor         *Money
}

type Defaults struct {
	BasePrice     Money
	SeatsPerRow   int
	RowAdjustment Money
	Floor         Money
}

// Calculator prices a seat from its row position. Row 1 is the front row
// and the most expensive; the last row costs the base price, never less
// than the floor.
type Calculator struct {
	defaults Defaults
}

func NewCalculator(d Defaults) *Calculator {
	return &Calculator{defaults: d}
}

func (c *Calculator) Defaults() Defaults {
	return c.defaults
}

// Resolve returns the effective row adjustment and floor for r.
func (c *Calculator) Resolve(r Rules) (adjustment, floor Money) {
	adjustment, floor = c.defaults.RowAdjustment, c.defaults.Floor
	if r.RowAdjustment != nil && *r.RowAdjustment >= 0 {
		adjustment = *r.RowAdjustment
	}
	if r.Floor != nil && *r.Floor >= 0 {
		floor = *r.Floor
	}
	return adjustment, floor
}

// Price computes base + (max(totalRows,1) - row) * rowAdjustment, clamped to the floor.
// Amounts are held in cents, so the 2-decimal rounding already happened when
// the inputs were converted with FromDecimal.
func (c *Calculator) Price(row, totalRows int, base Money, rules Rules) Money {
	adjustment, floor := c.Resolve(rules)

	if totalRows < 1 {
		totalRows = 1
	}
	multiplier := totalRows - row

	raw := base + adjustment.Mul(multiplier)
	if raw < floor {
		return floor
	}
	return raw
}
