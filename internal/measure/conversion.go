package measure

import "fmt"

// Conversion describes how a named unit maps onto its quantity's base unit.
// Almost every unit is linear (a bare factor). Temperature scales also need
// an offset applied before the factor, and fuel-economy units are
// reciprocal (miles per gallon versus liters per hundred kilometers).
type Conversion struct {
	offset     float64
	ratio      float64
	reciprocal bool
}

// Linear returns a conversion where one unit equals factor base units.
func Linear(factor float64) Conversion {
	return Conversion{ratio: factor}
}

// Affine returns a conversion where base = (value + offset) * ratio.
// Used only by temperature scales.
func Affine(offset, ratio float64) Conversion {
	return Conversion{offset: offset, ratio: ratio}
}

// Reciprocal returns a conversion where base = factor / value. The same
// formula inverts itself, so FromBase uses it too.
func Reciprocal(factor float64) Conversion {
	return Conversion{ratio: factor, reciprocal: true}
}

// ToBase converts a value expressed in this unit to the base unit.
func (c Conversion) ToBase(v float64) float64 {
	if c.reciprocal {
		return c.ratio / v
	}
	return (v + c.offset) * c.ratio
}

// FromBase converts a base-unit value to this unit.
func (c Conversion) FromBase(base float64) float64 {
	if c.reciprocal {
		return c.ratio / base
	}
	return base/c.ratio - c.offset
}

// Format renders a measure as "<value> <symbol>", e.g. "5 m". The value is
// limited to 12 significant digits so sub-tolerance conversion noise does
// not show up in display strings.
func Format[M ~float64](m M, symbol string) string {
	return fmt.Sprintf("%.12g %s", float64(m), symbol)
}
