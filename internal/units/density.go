package units

import "quanta/internal/measure"

// Density is normalized to kilograms per cubic meter.
type Density float64

// Kilograms per cubic meter per unit.
const (
	GramsPerCubicCentimeterToKgm3 = 1000.0
	PoundsPerCubicFootToKgm3      = (PoundsToGrams / KilogramsToGrams) / SquareFeetToSquareMeters / FeetToMeters
)

func KilogramsPerCubicMeter(v float64) Density { return Density(v) }
func GramsPerCubicCentimeter(v float64) Density {
	return Density(v * GramsPerCubicCentimeterToKgm3)
}
func PoundsPerCubicFoot(v float64) Density { return Density(v * PoundsPerCubicFootToKgm3) }

func (d Density) KilogramsPerCubicMeter() float64 { return float64(d) }
func (d Density) GramsPerCubicCentimeter() float64 {
	return float64(d) / GramsPerCubicCentimeterToKgm3
}
func (d Density) PoundsPerCubicFoot() float64 { return float64(d) / PoundsPerCubicFootToKgm3 }

func (d Density) String() string { return measure.Format(d, "kg/m³") }
