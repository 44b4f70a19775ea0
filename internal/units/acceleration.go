package units

import "quanta/internal/measure"

// Acceleration is normalized to meters per second squared.
type Acceleration float64

// Meters per second squared per unit.
const (
	FeetPerSecondSquaredToMps2 = FeetToMeters
	StandardGravityToMps2      = 9.80665
)

func MetersPerSecondSquared(v float64) Acceleration { return Acceleration(v) }
func FeetPerSecondSquared(v float64) Acceleration {
	return Acceleration(v * FeetPerSecondSquaredToMps2)
}
func StandardGravities(v float64) Acceleration { return Acceleration(v * StandardGravityToMps2) }

func (a Acceleration) MetersPerSecondSquared() float64 { return float64(a) }
func (a Acceleration) FeetPerSecondSquared() float64 {
	return float64(a) / FeetPerSecondSquaredToMps2
}
func (a Acceleration) StandardGravities() float64 { return float64(a) / StandardGravityToMps2 }

func (a Acceleration) String() string { return measure.Format(a, "m/s²") }
