package units

import "quanta/internal/measure"

// FuelEconomy is normalized to liters per 100 kilometers. Distance-per-fuel
// units (km/L, mpg) are reciprocal to the base, not linear, so their
// constants below are the numerator of base = constant / value.
type FuelEconomy float64

const (
	KilometersPerLiterFactor     = 100.0
	MilesPerGallonUSFactor       = 100 * GallonsUSToLiters / (MilesToMeters / KilometersToMeters)
	MilesPerGallonImperialFactor = 100 * GallonsImperialToLiters / (MilesToMeters / KilometersToMeters)
)

func LitersPer100Kilometers(v float64) FuelEconomy { return FuelEconomy(v) }
func KilometersPerLiter(v float64) FuelEconomy {
	return FuelEconomy(KilometersPerLiterFactor / v)
}
func MilesPerGallonUS(v float64) FuelEconomy {
	return FuelEconomy(MilesPerGallonUSFactor / v)
}
func MilesPerGallonImperial(v float64) FuelEconomy {
	return FuelEconomy(MilesPerGallonImperialFactor / v)
}

func (f FuelEconomy) LitersPer100Kilometers() float64 { return float64(f) }
func (f FuelEconomy) KilometersPerLiter() float64 {
	return KilometersPerLiterFactor / float64(f)
}
func (f FuelEconomy) MilesPerGallonUS() float64 {
	return MilesPerGallonUSFactor / float64(f)
}
func (f FuelEconomy) MilesPerGallonImperial() float64 {
	return MilesPerGallonImperialFactor / float64(f)
}

func (f FuelEconomy) String() string { return measure.Format(f, "L/100km") }
