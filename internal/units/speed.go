package units

import "quanta/internal/measure"

// Speed is normalized to meters per second.
type Speed float64

// Meters per second per unit.
const (
	KilometersPerHourToMps = KilometersToMeters / HoursToSeconds
	MilesPerHourToMps      = MilesToMeters / HoursToSeconds
	KnotsToMps             = NauticalMilesToMeters / HoursToSeconds
	FeetPerSecondToMps     = FeetToMeters
)

func MetersPerSecond(v float64) Speed   { return Speed(v) }
func KilometersPerHour(v float64) Speed { return Speed(v * KilometersPerHourToMps) }
func MilesPerHour(v float64) Speed      { return Speed(v * MilesPerHourToMps) }
func Knots(v float64) Speed             { return Speed(v * KnotsToMps) }
func FeetPerSecond(v float64) Speed     { return Speed(v * FeetPerSecondToMps) }

func (s Speed) MetersPerSecond() float64   { return float64(s) }
func (s Speed) KilometersPerHour() float64 { return float64(s) / KilometersPerHourToMps }
func (s Speed) MilesPerHour() float64      { return float64(s) / MilesPerHourToMps }
func (s Speed) Knots() float64             { return float64(s) / KnotsToMps }
func (s Speed) FeetPerSecond() float64     { return float64(s) / FeetPerSecondToMps }

func (s Speed) String() string { return measure.Format(s, "m/s") }
