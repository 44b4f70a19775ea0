package units

import "quanta/internal/measure"

// Torque is normalized to newton-meters.
type Torque float64

// Newton-meters per unit.
const (
	PoundFeetToNewtonMeters = PoundsForceToNewtons * FeetToMeters
)

func NewtonMeters(v float64) Torque { return Torque(v) }
func PoundFeet(v float64) Torque    { return Torque(v * PoundFeetToNewtonMeters) }

func (t Torque) NewtonMeters() float64 { return float64(t) }
func (t Torque) PoundFeet() float64    { return float64(t) / PoundFeetToNewtonMeters }

func (t Torque) String() string { return measure.Format(t, "N·m") }
