package units

import "quanta/internal/measure"

// Force is normalized to newtons.
type Force float64

// Newtons per unit.
const (
	KilonewtonsToNewtons = 1000.0
	PoundsForceToNewtons = 4.4482216152605
	DynesToNewtons       = 1e-5
)

func Newtons(v float64) Force     { return Force(v) }
func Kilonewtons(v float64) Force { return Force(v * KilonewtonsToNewtons) }
func PoundsForce(v float64) Force { return Force(v * PoundsForceToNewtons) }
func Dynes(v float64) Force       { return Force(v * DynesToNewtons) }

func (f Force) Newtons() float64     { return float64(f) }
func (f Force) Kilonewtons() float64 { return float64(f) / KilonewtonsToNewtons }
func (f Force) PoundsForce() float64 { return float64(f) / PoundsForceToNewtons }
func (f Force) Dynes() float64       { return float64(f) / DynesToNewtons }

func (f Force) String() string { return measure.Format(f, "N") }
