package units

import "quanta/internal/measure"

// Area is normalized to square meters.
type Area float64

// Square meters per unit.
const (
	SquareCentimetersToSquareMeters = CentimetersToMeters * CentimetersToMeters
	SquareKilometersToSquareMeters  = KilometersToMeters * KilometersToMeters
	SquareInchesToSquareMeters      = InchesToMeters * InchesToMeters
	SquareFeetToSquareMeters        = FeetToMeters * FeetToMeters
	SquareMilesToSquareMeters       = MilesToMeters * MilesToMeters
	HectaresToSquareMeters          = 1e4
	AcresToSquareMeters             = 4046.8564224
)

func SquareCentimeters(v float64) Area { return Area(v * SquareCentimetersToSquareMeters) }
func SquareMeters(v float64) Area      { return Area(v) }
func SquareKilometers(v float64) Area  { return Area(v * SquareKilometersToSquareMeters) }
func SquareInches(v float64) Area      { return Area(v * SquareInchesToSquareMeters) }
func SquareFeet(v float64) Area        { return Area(v * SquareFeetToSquareMeters) }
func SquareMiles(v float64) Area       { return Area(v * SquareMilesToSquareMeters) }
func Hectares(v float64) Area          { return Area(v * HectaresToSquareMeters) }
func Acres(v float64) Area             { return Area(v * AcresToSquareMeters) }

func (a Area) SquareCentimeters() float64 { return float64(a) / SquareCentimetersToSquareMeters }
func (a Area) SquareMeters() float64      { return float64(a) }
func (a Area) SquareKilometers() float64  { return float64(a) / SquareKilometersToSquareMeters }
func (a Area) SquareInches() float64      { return float64(a) / SquareInchesToSquareMeters }
func (a Area) SquareFeet() float64        { return float64(a) / SquareFeetToSquareMeters }
func (a Area) SquareMiles() float64       { return float64(a) / SquareMilesToSquareMeters }
func (a Area) Hectares() float64          { return float64(a) / HectaresToSquareMeters }
func (a Area) Acres() float64             { return float64(a) / AcresToSquareMeters }

func (a Area) String() string { return measure.Format(a, "m²") }
