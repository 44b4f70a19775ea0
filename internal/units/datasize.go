package units

import "quanta/internal/measure"

// DataSize is normalized to bytes. Decimal prefixes are powers of 1000,
// binary prefixes powers of 1024.
type DataSize float64

// Bytes per unit.
const (
	BitsToBytes      = 0.125
	KilobytesToBytes = 1e3
	MegabytesToBytes = 1e6
	GigabytesToBytes = 1e9
	TerabytesToBytes = 1e12
	KibibytesToBytes = 1024.0
	MebibytesToBytes = 1024.0 * 1024.0
	GibibytesToBytes = 1024.0 * 1024.0 * 1024.0
	TebibytesToBytes = 1024.0 * 1024.0 * 1024.0 * 1024.0
)

func Bits(v float64) DataSize      { return DataSize(v * BitsToBytes) }
func Bytes(v float64) DataSize     { return DataSize(v) }
func Kilobytes(v float64) DataSize { return DataSize(v * KilobytesToBytes) }
func Megabytes(v float64) DataSize { return DataSize(v * MegabytesToBytes) }
func Gigabytes(v float64) DataSize { return DataSize(v * GigabytesToBytes) }
func Terabytes(v float64) DataSize { return DataSize(v * TerabytesToBytes) }
func Kibibytes(v float64) DataSize { return DataSize(v * KibibytesToBytes) }
func Mebibytes(v float64) DataSize { return DataSize(v * MebibytesToBytes) }
func Gibibytes(v float64) DataSize { return DataSize(v * GibibytesToBytes) }
func Tebibytes(v float64) DataSize { return DataSize(v * TebibytesToBytes) }

func (d DataSize) Bits() float64      { return float64(d) / BitsToBytes }
func (d DataSize) Bytes() float64     { return float64(d) }
func (d DataSize) Kilobytes() float64 { return float64(d) / KilobytesToBytes }
func (d DataSize) Megabytes() float64 { return float64(d) / MegabytesToBytes }
func (d DataSize) Gigabytes() float64 { return float64(d) / GigabytesToBytes }
func (d DataSize) Terabytes() float64 { return float64(d) / TerabytesToBytes }
func (d DataSize) Kibibytes() float64 { return float64(d) / KibibytesToBytes }
func (d DataSize) Mebibytes() float64 { return float64(d) / MebibytesToBytes }
func (d DataSize) Gibibytes() float64 { return float64(d) / GibibytesToBytes }
func (d DataSize) Tebibytes() float64 { return float64(d) / TebibytesToBytes }

func (d DataSize) String() string { return measure.Format(d, "B") }
