package units

import "quanta/internal/measure"

// Frequency is normalized to hertz.
type Frequency float64

// Hertz per unit.
const (
	KilohertzToHertz = 1e3
	MegahertzToHertz = 1e6
	GigahertzToHertz = 1e9
	RPMToHertz       = 1.0 / 60.0
)

func Hertz(v float64) Frequency                { return Frequency(v) }
func Kilohertz(v float64) Frequency            { return Frequency(v * KilohertzToHertz) }
func Megahertz(v float64) Frequency            { return Frequency(v * MegahertzToHertz) }
func Gigahertz(v float64) Frequency            { return Frequency(v * GigahertzToHertz) }
func RevolutionsPerMinute(v float64) Frequency { return Frequency(v * RPMToHertz) }

func (f Frequency) Hertz() float64                { return float64(f) }
func (f Frequency) Kilohertz() float64            { return float64(f) / KilohertzToHertz }
func (f Frequency) Megahertz() float64            { return float64(f) / MegahertzToHertz }
func (f Frequency) Gigahertz() float64            { return float64(f) / GigahertzToHertz }
func (f Frequency) RevolutionsPerMinute() float64 { return float64(f) / RPMToHertz }

func (f Frequency) String() string { return measure.Format(f, "Hz") }
