// Package catalog resolves quantity and unit names to conversions.
//
// The typed constructors in internal/units serve Go callers; the HTTP API
// works with strings. This package maps quantity names ("length") and unit
// names, symbols, or aliases ("km", "kilometers") onto the same constant
// factors, so both surfaces always agree.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"quanta/internal/measure"
)

// Lookup errors. Name resolution is the only thing in the library that can
// fail; the arithmetic itself never does.
var (
	ErrUnknownQuantity = errors.New("unknown quantity")
	ErrUnknownUnit     = errors.New("unknown unit")
)

// Unit is one named unit of a quantity.
type Unit struct {
	Name    string
	Symbol  string
	Aliases []string

	conv measure.Conversion
}

// Conversion returns how this unit maps onto the quantity's base unit.
func (u Unit) Conversion() measure.Conversion { return u.conv }

// Quantity is one physical quantity and its registered units. The first
// registered unit is always the base unit.
type Quantity struct {
	Name  string
	units []Unit
	index map[string]int
}

// BaseUnit returns the quantity's canonical unit.
func (q *Quantity) BaseUnit() Unit { return q.units[0] }

// Units returns the quantity's units in registration order.
func (q *Quantity) Units() []Unit {
	out := make([]Unit, len(q.units))
	copy(out, q.units)
	return out
}

// Lookup resolves a unit by name, symbol, or alias, case-insensitively.
func (q *Quantity) Lookup(unit string) (Unit, error) {
	i, ok := q.index[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q is not a unit of %s", ErrUnknownUnit, unit, q.Name)
	}
	return q.units[i], nil
}

// Convert converts value between two named units of this quantity.
func (q *Quantity) Convert(value float64, from, to string) (float64, error) {
	src, err := q.Lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := q.Lookup(to)
	if err != nil {
		return 0, err
	}
	return dst.conv.FromBase(src.conv.ToBase(value)), nil
}

// Get returns a quantity by name, case-insensitively.
func Get(name string) (*Quantity, error) {
	q, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuantity, name)
	}
	return q, nil
}

// Convert converts value between two named units of a named quantity.
func Convert(quantity string, value float64, from, to string) (float64, error) {
	q, err := Get(quantity)
	if err != nil {
		return 0, err
	}
	return q.Convert(value, from, to)
}

// Quantities returns all registered quantity names, sorted.
func Quantities() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newQuantity indexes a quantity's units by lowercase name, symbol, and
// alias. Called once per quantity at package init.
func newQuantity(name string, us ...Unit) *Quantity {
	q := &Quantity{
		Name:  name,
		units: us,
		index: make(map[string]int),
	}
	for i, u := range us {
		q.index[strings.ToLower(u.Name)] = i
		q.index[strings.ToLower(u.Symbol)] = i
		for _, a := range u.Aliases {
			q.index[strings.ToLower(a)] = i
		}
	}
	return q
}
