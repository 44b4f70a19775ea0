package units

import "quanta/internal/measure"

// Temperature is normalized to kelvin.
//
// Temperature is the one quantity whose conversions are affine rather than
// a bare factor: Celsius shifts by the absolute-zero offset, Fahrenheit
// shifts and scales. Absolute zero round-trips exactly through both scales
// up to sub-tolerance floating-point drift.
type Temperature float64

const (
	// CelsiusOffset is the kelvin value of 0 degrees Celsius.
	CelsiusOffset = 273.15

	// FahrenheitOffset is the Fahrenheit value whose kelvin equivalent is 0.
	FahrenheitOffset = 459.67

	// FahrenheitRatio converts Fahrenheit degrees to kelvin degrees.
	FahrenheitRatio = 5.0 / 9.0
)

func Kelvin(v float64) Temperature     { return Temperature(v) }
func Celsius(v float64) Temperature    { return Temperature(v + CelsiusOffset) }
func Fahrenheit(v float64) Temperature { return Temperature((v + FahrenheitOffset) * FahrenheitRatio) }

func (t Temperature) Kelvin() float64     { return float64(t) }
func (t Temperature) Celsius() float64    { return float64(t) - CelsiusOffset }
func (t Temperature) Fahrenheit() float64 { return float64(t)/FahrenheitRatio - FahrenheitOffset }

func (t Temperature) String() string { return measure.Format(t, "K") }
