package units

// Cross-quantity derivations. Each converts its operands to coherent SI
// units before combining, since some base units here are not the SI
// coherent ones (grams, liters).

// ForceOf derives force from mass and acceleration (F = m·a).
func ForceOf(m Mass, a Acceleration) Force {
	return Newtons(m.Kilograms() * a.MetersPerSecondSquared())
}

// VoltageOf derives voltage from current and resistance (V = I·R).
func VoltageOf(i Current, r Resistance) Voltage {
	return Volts(i.Amperes() * r.Ohms())
}

// ResistanceOf derives resistance from voltage and current (R = V/I).
func ResistanceOf(v Voltage, i Current) Resistance {
	return Ohms(v.Volts() / i.Amperes())
}

// PowerFromCurrent derives power from voltage and current (P = V·I).
func PowerFromCurrent(v Voltage, i Current) Power {
	return Watts(v.Volts() * i.Amperes())
}

// SpeedOf derives speed from distance and elapsed time.
func SpeedOf(l Length, d Duration) Speed {
	return MetersPerSecond(l.Meters() / d.Seconds())
}

// AccelerationOf derives acceleration from a speed change over time.
func AccelerationOf(s Speed, d Duration) Acceleration {
	return MetersPerSecondSquared(s.MetersPerSecond() / d.Seconds())
}

// EnergyOf derives energy from power sustained over time (E = P·t).
func EnergyOf(p Power, d Duration) Energy {
	return Joules(p.Watts() * d.Seconds())
}

// PowerOf derives power from energy delivered over time (P = E/t).
func PowerOf(e Energy, d Duration) Power {
	return Watts(e.Joules() / d.Seconds())
}

// AreaOf derives area from two lengths.
func AreaOf(a, b Length) Area {
	return SquareMeters(a.Meters() * b.Meters())
}

// DensityOf derives density from mass and volume.
func DensityOf(m Mass, v Volume) Density {
	return KilogramsPerCubicMeter(m.Kilograms() / v.CubicMeters())
}

// TorqueOf derives torque from force applied at a lever arm.
func TorqueOf(f Force, arm Length) Torque {
	return NewtonMeters(f.Newtons() * arm.Meters())
}

// DataRateOf derives throughput from an amount of data over time.
func DataRateOf(size DataSize, d Duration) DataRate {
	return BytesPerSecond(size.Bytes() / d.Seconds())
}
