package units

import "quanta/internal/measure"

// Current is normalized to amperes.
type Current float64

// Amperes per unit.
const (
	MilliamperesToAmperes = 0.001
	KiloamperesToAmperes  = 1000.0
)

func Milliamperes(v float64) Current { return Current(v * MilliamperesToAmperes) }
func Amperes(v float64) Current      { return Current(v) }
func Kiloamperes(v float64) Current  { return Current(v * KiloamperesToAmperes) }

func (c Current) Milliamperes() float64 { return float64(c) / MilliamperesToAmperes }
func (c Current) Amperes() float64      { return float64(c) }
func (c Current) Kiloamperes() float64  { return float64(c) / KiloamperesToAmperes }

func (c Current) String() string { return measure.Format(c, "A") }

// Voltage is normalized to volts.
type Voltage float64

// Volts per unit.
const (
	MillivoltsToVolts = 0.001
	KilovoltsToVolts  = 1000.0
)

func Millivolts(v float64) Voltage { return Voltage(v * MillivoltsToVolts) }
func Volts(v float64) Voltage      { return Voltage(v) }
func Kilovolts(v float64) Voltage  { return Voltage(v * KilovoltsToVolts) }

func (u Voltage) Millivolts() float64 { return float64(u) / MillivoltsToVolts }
func (u Voltage) Volts() float64      { return float64(u) }
func (u Voltage) Kilovolts() float64  { return float64(u) / KilovoltsToVolts }

func (u Voltage) String() string { return measure.Format(u, "V") }

// Resistance is normalized to ohms.
type Resistance float64

// Ohms per unit.
const (
	KiloohmsToOhms = 1000.0
	MegaohmsToOhms = 1e6
)

func Ohms(v float64) Resistance     { return Resistance(v) }
func Kiloohms(v float64) Resistance { return Resistance(v * KiloohmsToOhms) }
func Megaohms(v float64) Resistance { return Resistance(v * MegaohmsToOhms) }

func (r Resistance) Ohms() float64     { return float64(r) }
func (r Resistance) Kiloohms() float64 { return float64(r) / KiloohmsToOhms }
func (r Resistance) Megaohms() float64 { return float64(r) / MegaohmsToOhms }

func (r Resistance) String() string { return measure.Format(r, "Ω") }
