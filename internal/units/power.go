package units

import "quanta/internal/measure"

// Power is normalized to watts.
type Power float64

// Watts per unit. Horsepower is the mechanical definition.
const (
	KilowattsToWatts  = 1000.0
	MegawattsToWatts  = 1e6
	HorsepowerToWatts = 745.6998715822702
)

func Watts(v float64) Power      { return Power(v) }
func Kilowatts(v float64) Power  { return Power(v * KilowattsToWatts) }
func Megawatts(v float64) Power  { return Power(v * MegawattsToWatts) }
func Horsepower(v float64) Power { return Power(v * HorsepowerToWatts) }

func (p Power) Watts() float64      { return float64(p) }
func (p Power) Kilowatts() float64  { return float64(p) / KilowattsToWatts }
func (p Power) Megawatts() float64  { return float64(p) / MegawattsToWatts }
func (p Power) Horsepower() float64 { return float64(p) / HorsepowerToWatts }

func (p Power) String() string { return measure.Format(p, "W") }
