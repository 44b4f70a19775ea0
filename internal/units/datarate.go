package units

import "quanta/internal/measure"

// DataRate is throughput normalized to bytes per second.
type DataRate float64

// Bytes per second per unit.
const (
	BitsPerSecondToBps      = BitsToBytes
	KilobitsPerSecondToBps  = BitsToBytes * 1e3
	MegabitsPerSecondToBps  = BitsToBytes * 1e6
	GigabitsPerSecondToBps  = BitsToBytes * 1e9
	KilobytesPerSecondToBps = 1e3
	MegabytesPerSecondToBps = 1e6
	GigabytesPerSecondToBps = 1e9
)

func BytesPerSecond(v float64) DataRate     { return DataRate(v) }
func KilobytesPerSecond(v float64) DataRate { return DataRate(v * KilobytesPerSecondToBps) }
func MegabytesPerSecond(v float64) DataRate { return DataRate(v * MegabytesPerSecondToBps) }
func GigabytesPerSecond(v float64) DataRate { return DataRate(v * GigabytesPerSecondToBps) }
func BitsPerSecond(v float64) DataRate      { return DataRate(v * BitsPerSecondToBps) }
func KilobitsPerSecond(v float64) DataRate  { return DataRate(v * KilobitsPerSecondToBps) }
func MegabitsPerSecond(v float64) DataRate  { return DataRate(v * MegabitsPerSecondToBps) }
func GigabitsPerSecond(v float64) DataRate  { return DataRate(v * GigabitsPerSecondToBps) }

func (r DataRate) BytesPerSecond() float64     { return float64(r) }
func (r DataRate) KilobytesPerSecond() float64 { return float64(r) / KilobytesPerSecondToBps }
func (r DataRate) MegabytesPerSecond() float64 { return float64(r) / MegabytesPerSecondToBps }
func (r DataRate) GigabytesPerSecond() float64 { return float64(r) / GigabytesPerSecondToBps }
func (r DataRate) BitsPerSecond() float64      { return float64(r) / BitsPerSecondToBps }
func (r DataRate) KilobitsPerSecond() float64  { return float64(r) / KilobitsPerSecondToBps }
func (r DataRate) MegabitsPerSecond() float64  { return float64(r) / MegabitsPerSecondToBps }
func (r DataRate) GigabitsPerSecond() float64  { return float64(r) / GigabitsPerSecondToBps }

func (r DataRate) String() string { return measure.Format(r, "B/s") }
