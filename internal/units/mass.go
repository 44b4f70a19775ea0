package units

import "quanta/internal/measure"

// Mass is normalized to grams.
type Mass float64

// Grams per unit.
const (
	MilligramsToGrams = 0.001
	KilogramsToGrams  = 1000.0
	TonnesToGrams     = 1e6
	OuncesToGrams     = 28.349523125
	PoundsToGrams     = 453.59237
	StonesToGrams     = 6350.29318
)

func Milligrams(v float64) Mass { return Mass(v * MilligramsToGrams) }
func Grams(v float64) Mass      { return Mass(v) }
func Kilograms(v float64) Mass  { return Mass(v * KilogramsToGrams) }
func Tonnes(v float64) Mass     { return Mass(v * TonnesToGrams) }
func Ounces(v float64) Mass     { return Mass(v * OuncesToGrams) }
func Pounds(v float64) Mass     { return Mass(v * PoundsToGrams) }
func Stones(v float64) Mass     { return Mass(v * StonesToGrams) }

func (m Mass) Milligrams() float64 { return float64(m) / MilligramsToGrams }
func (m Mass) Grams() float64      { return float64(m) }
func (m Mass) Kilograms() float64  { return float64(m) / KilogramsToGrams }
func (m Mass) Tonnes() float64     { return float64(m) / TonnesToGrams }
func (m Mass) Ounces() float64     { return float64(m) / OuncesToGrams }
func (m Mass) Pounds() float64     { return float64(m) / PoundsToGrams }
func (m Mass) Stones() float64     { return float64(m) / StonesToGrams }

func (m Mass) String() string { return measure.Format(m, "g") }
