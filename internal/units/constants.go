package units

// Physical constants, expressed as typed measures.
var (
	// SpeedOfLight is the speed of light in vacuum (exact).
	SpeedOfLight = MetersPerSecond(299792458)

	// SpeedOfSound is the speed of sound in dry air at 20 °C.
	SpeedOfSound = MetersPerSecond(343)

	// StandardGravity is the nominal gravitational acceleration at the
	// Earth's surface.
	StandardGravity = MetersPerSecondSquared(StandardGravityToMps2)

	// StandardAtmosphere is sea-level standard atmospheric pressure.
	StandardAtmosphere = Atmospheres(1)

	// WaterFreezingPoint and WaterBoilingPoint are at standard pressure.
	WaterFreezingPoint = Celsius(0)
	WaterBoilingPoint  = Celsius(100)

	// AbsoluteZero is 0 K.
	AbsoluteZero = Kelvin(0)

	// WaterDensity is the density of water at 4 °C.
	WaterDensity = KilogramsPerCubicMeter(1000)

	// EarthRadius is the mean radius of the Earth.
	EarthRadius = Kilometers(6371)

	// MountEverestElevation is the summit elevation of Mount Everest.
	MountEverestElevation = Meters(8848)
)
