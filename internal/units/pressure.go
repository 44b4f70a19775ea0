package units

import "quanta/internal/measure"

// Pressure is normalized to pascals.
type Pressure float64

// Pascals per unit.
const (
	HectopascalsToPascals = 100.0
	KilopascalsToPascals  = 1000.0
	BarsToPascals         = 1e5
	AtmospheresToPascals  = 101325.0
	TorrToPascals         = AtmospheresToPascals / 760
	PsiToPascals          = 6894.757293168361
)

func Pascals(v float64) Pressure      { return Pressure(v) }
func Hectopascals(v float64) Pressure { return Pressure(v * HectopascalsToPascals) }
func Kilopascals(v float64) Pressure  { return Pressure(v * KilopascalsToPascals) }
func Bars(v float64) Pressure         { return Pressure(v * BarsToPascals) }
func Atmospheres(v float64) Pressure  { return Pressure(v * AtmospheresToPascals) }
func Torr(v float64) Pressure         { return Pressure(v * TorrToPascals) }
func Psi(v float64) Pressure          { return Pressure(v * PsiToPascals) }

func (p Pressure) Pascals() float64      { return float64(p) }
func (p Pressure) Hectopascals() float64 { return float64(p) / HectopascalsToPascals }
func (p Pressure) Kilopascals() float64  { return float64(p) / KilopascalsToPascals }
func (p Pressure) Bars() float64         { return float64(p) / BarsToPascals }
func (p Pressure) Atmospheres() float64  { return float64(p) / AtmospheresToPascals }
func (p Pressure) Torr() float64         { return float64(p) / TorrToPascals }
func (p Pressure) Psi() float64          { return float64(p) / PsiToPascals }

func (p Pressure) String() string { return measure.Format(p, "Pa") }
