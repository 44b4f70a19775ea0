// Package units defines one strongly-typed value per physical quantity.
//
// Every type is a float64 normalized to its canonical base unit (meters for
// Length, grams for Mass, kelvin for Temperature, ...). Constructors convert
// a named unit into the base unit; accessors convert back out. Both sides
// are thin wrappers over a single constant factor, except temperature, whose
// scales are affine (offset plus ratio), and fuel economy, whose units are
// reciprocal.
//
// Arithmetic and comparisons come from internal/measure and apply to every
// type here. Values are never validated: NaN and Infinity flow through.
package units
