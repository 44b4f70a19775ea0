// Package measure provides the arithmetic shared by every quantity type.
//
// Each quantity (Length, Mass, Temperature, ...) is a defined float64 type
// whose underlying value is always the quantity's base unit. The functions
// here are generic over any such type, so the add/subtract/scale/divide/ratio
// operations and the tolerance-based equality are written exactly once
// instead of being duplicated per quantity.
//
// No input is validated anywhere in this package. NaN and Infinity propagate
// through every operation per IEEE-754, and dividing by zero yields Inf or
// NaN rather than an error.
package measure

import "math"

// Tolerance is the absolute difference below which two base values are
// considered equal.
const Tolerance = 1e-10

// Add returns the sum of two measures of the same quantity.
func Add[M ~float64](a, b M) M {
	return a + b
}

// Sub returns a minus b.
func Sub[M ~float64](a, b M) M {
	return a - b
}

// Scale returns the measure multiplied by a dimensionless scalar.
func Scale[M ~float64](m M, k float64) M {
	return m * M(k)
}

// Div returns the measure divided by a dimensionless scalar. Dividing by
// zero yields Inf or NaN.
func Div[M ~float64](m M, k float64) M {
	return m / M(k)
}

// Ratio returns the dimensionless quotient of two measures of the same
// quantity. A zero divisor yields Inf or NaN.
func Ratio[M ~float64](a, b M) float64 {
	return float64(a) / float64(b)
}

// Equal reports whether two measures differ by less than Tolerance.
// Note that strict transitivity does not hold for chains of values each
// within Tolerance of its neighbor; that is inherent to epsilon equality.
// NaN is never equal to anything, including itself.
func Equal[M ~float64](a, b M) bool {
	return math.Abs(float64(a)-float64(b)) < Tolerance
}

// Less reports a < b by strict float64 comparison. Values within Tolerance
// of each other compare Equal yet may still order as less or greater; the
// boundary behavior is deliberate.
func Less[M ~float64](a, b M) bool {
	return a < b
}

// Greater reports a > b by strict float64 comparison.
func Greater[M ~float64](a, b M) bool {
	return a > b
}

// LessOrEqual reports a < b or Equal(a, b).
func LessOrEqual[M ~float64](a, b M) bool {
	return a < b || Equal(a, b)
}

// GreaterOrEqual reports a > b or Equal(a, b).
func GreaterOrEqual[M ~float64](a, b M) bool {
	return a > b || Equal(a, b)
}
