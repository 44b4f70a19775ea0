package units

import "quanta/internal/measure"

// Volume is normalized to liters.
type Volume float64

// Liters per unit. The US customary ladder is derived from the gallon so
// the factors stay exact relative to each other.
const (
	MillilitersToLiters     = 0.001
	CubicMetersToLiters     = 1000.0
	GallonsUSToLiters       = 3.785411784
	GallonsImperialToLiters = 4.54609
	QuartsToLiters          = GallonsUSToLiters / 4
	PintsToLiters           = GallonsUSToLiters / 8
	CupsToLiters            = GallonsUSToLiters / 16
	FluidOuncesToLiters     = GallonsUSToLiters / 128
	TablespoonsToLiters     = GallonsUSToLiters / 256
	TeaspoonsToLiters       = GallonsUSToLiters / 768
)

func Milliliters(v float64) Volume     { return Volume(v * MillilitersToLiters) }
func Liters(v float64) Volume          { return Volume(v) }
func CubicMeters(v float64) Volume     { return Volume(v * CubicMetersToLiters) }
func GallonsUS(v float64) Volume       { return Volume(v * GallonsUSToLiters) }
func GallonsImperial(v float64) Volume { return Volume(v * GallonsImperialToLiters) }
func Quarts(v float64) Volume          { return Volume(v * QuartsToLiters) }
func Pints(v float64) Volume           { return Volume(v * PintsToLiters) }
func Cups(v float64) Volume            { return Volume(v * CupsToLiters) }
func FluidOunces(v float64) Volume     { return Volume(v * FluidOuncesToLiters) }
func Tablespoons(v float64) Volume     { return Volume(v * TablespoonsToLiters) }
func Teaspoons(v float64) Volume       { return Volume(v * TeaspoonsToLiters) }

func (v Volume) Milliliters() float64     { return float64(v) / MillilitersToLiters }
func (v Volume) Liters() float64          { return float64(v) }
func (v Volume) CubicMeters() float64     { return float64(v) / CubicMetersToLiters }
func (v Volume) GallonsUS() float64       { return float64(v) / GallonsUSToLiters }
func (v Volume) GallonsImperial() float64 { return float64(v) / GallonsImperialToLiters }
func (v Volume) Quarts() float64          { return float64(v) / QuartsToLiters }
func (v Volume) Pints() float64           { return float64(v) / PintsToLiters }
func (v Volume) Cups() float64            { return float64(v) / CupsToLiters }
func (v Volume) FluidOunces() float64     { return float64(v) / FluidOuncesToLiters }
func (v Volume) Tablespoons() float64     { return float64(v) / TablespoonsToLiters }
func (v Volume) Teaspoons() float64       { return float64(v) / TeaspoonsToLiters }

func (v Volume) String() string { return measure.Format(v, "L") }
