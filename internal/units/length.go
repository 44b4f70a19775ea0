package units

import "quanta/internal/measure"

// Length is a distance normalized to meters.
type Length float64

// Meters per unit.
const (
	MillimetersToMeters   = 0.001
	CentimetersToMeters   = 0.01
	KilometersToMeters    = 1000.0
	InchesToMeters        = 0.0254
	FeetToMeters          = 0.3048
	YardsToMeters         = 0.9144
	MilesToMeters         = 1609.344
	NauticalMilesToMeters = 1852.0
)

func Millimeters(v float64) Length   { return Length(v * MillimetersToMeters) }
func Centimeters(v float64) Length   { return Length(v * CentimetersToMeters) }
func Meters(v float64) Length        { return Length(v) }
func Kilometers(v float64) Length    { return Length(v * KilometersToMeters) }
func Inches(v float64) Length        { return Length(v * InchesToMeters) }
func Feet(v float64) Length          { return Length(v * FeetToMeters) }
func Yards(v float64) Length         { return Length(v * YardsToMeters) }
func Miles(v float64) Length         { return Length(v * MilesToMeters) }
func NauticalMiles(v float64) Length { return Length(v * NauticalMilesToMeters) }

func (l Length) Millimeters() float64   { return float64(l) / MillimetersToMeters }
func (l Length) Centimeters() float64   { return float64(l) / CentimetersToMeters }
func (l Length) Meters() float64        { return float64(l) }
func (l Length) Kilometers() float64    { return float64(l) / KilometersToMeters }
func (l Length) Inches() float64        { return float64(l) / InchesToMeters }
func (l Length) Feet() float64          { return float64(l) / FeetToMeters }
func (l Length) Yards() float64         { return float64(l) / YardsToMeters }
func (l Length) Miles() float64         { return float64(l) / MilesToMeters }
func (l Length) NauticalMiles() float64 { return float64(l) / NauticalMilesToMeters }

func (l Length) String() string { return measure.Format(l, "m") }
