package catalog

import (
	"quanta/internal/measure"
	"quanta/internal/units"
)

// registry maps lowercase quantity names to their definitions. Factors come
// from the constants in internal/units so the string surface and the typed
// surface can never drift apart. The first unit of each quantity is its
// base unit (factor 1).
var registry = map[string]*Quantity{}

func register(q *Quantity) {
	registry[q.Name] = q
}

func lin(factor float64) measure.Conversion { return measure.Linear(factor) }

func init() {
	register(newQuantity("length",
		Unit{Name: "meters", Symbol: "m", Aliases: []string{"meter", "metre", "metres"}, conv: lin(1)},
		Unit{Name: "millimeters", Symbol: "mm", Aliases: []string{"millimeter"}, conv: lin(units.MillimetersToMeters)},
		Unit{Name: "centimeters", Symbol: "cm", Aliases: []string{"centimeter"}, conv: lin(units.CentimetersToMeters)},
		Unit{Name: "kilometers", Symbol: "km", Aliases: []string{"kilometer", "kilometre"}, conv: lin(units.KilometersToMeters)},
		Unit{Name: "inches", Symbol: "in", Aliases: []string{"inch"}, conv: lin(units.InchesToMeters)},
		Unit{Name: "feet", Symbol: "ft", Aliases: []string{"foot"}, conv: lin(units.FeetToMeters)},
		Unit{Name: "yards", Symbol: "yd", Aliases: []string{"yard"}, conv: lin(units.YardsToMeters)},
		Unit{Name: "miles", Symbol: "mi", Aliases: []string{"mile"}, conv: lin(units.MilesToMeters)},
		Unit{Name: "nautical miles", Symbol: "nmi", Aliases: []string{"nautical mile"}, conv: lin(units.NauticalMilesToMeters)},
	))

	register(newQuantity("mass",
		Unit{Name: "grams", Symbol: "g", Aliases: []string{"gram"}, conv: lin(1)},
		Unit{Name: "milligrams", Symbol: "mg", Aliases: []string{"milligram"}, conv: lin(units.MilligramsToGrams)},
		Unit{Name: "kilograms", Symbol: "kg", Aliases: []string{"kilogram"}, conv: lin(units.KilogramsToGrams)},
		Unit{Name: "tonnes", Symbol: "t", Aliases: []string{"tonne", "metric ton"}, conv: lin(units.TonnesToGrams)},
		Unit{Name: "ounces", Symbol: "oz", Aliases: []string{"ounce"}, conv: lin(units.OuncesToGrams)},
		Unit{Name: "pounds", Symbol: "lb", Aliases: []string{"pound", "lbs"}, conv: lin(units.PoundsToGrams)},
		Unit{Name: "stones", Symbol: "st", Aliases: []string{"stone"}, conv: lin(units.StonesToGrams)},
	))

	register(newQuantity("duration",
		Unit{Name: "seconds", Symbol: "s", Aliases: []string{"second", "sec"}, conv: lin(1)},
		Unit{Name: "milliseconds", Symbol: "ms", Aliases: []string{"millisecond"}, conv: lin(units.MillisecondsToSeconds)},
		Unit{Name: "minutes", Symbol: "min", Aliases: []string{"minute"}, conv: lin(units.MinutesToSeconds)},
		Unit{Name: "hours", Symbol: "h", Aliases: []string{"hour", "hr"}, conv: lin(units.HoursToSeconds)},
		Unit{Name: "days", Symbol: "d", Aliases: []string{"day"}, conv: lin(units.DaysToSeconds)},
		Unit{Name: "weeks", Symbol: "wk", Aliases: []string{"week"}, conv: lin(units.WeeksToSeconds)},
	))

	register(newQuantity("temperature",
		Unit{Name: "kelvin", Symbol: "K", conv: lin(1)},
		Unit{Name: "celsius", Symbol: "°C", Aliases: []string{"c", "degC"}, conv: measure.Affine(units.CelsiusOffset, 1)},
		Unit{Name: "fahrenheit", Symbol: "°F", Aliases: []string{"f", "degF"}, conv: measure.Affine(units.FahrenheitOffset, units.FahrenheitRatio)},
	))

	register(newQuantity("speed",
		Unit{Name: "meters per second", Symbol: "m/s", conv: lin(1)},
		Unit{Name: "kilometers per hour", Symbol: "km/h", Aliases: []string{"kph"}, conv: lin(units.KilometersPerHourToMps)},
		Unit{Name: "miles per hour", Symbol: "mph", conv: lin(units.MilesPerHourToMps)},
		Unit{Name: "knots", Symbol: "kn", Aliases: []string{"knot", "kt"}, conv: lin(units.KnotsToMps)},
		Unit{Name: "feet per second", Symbol: "ft/s", conv: lin(units.FeetPerSecondToMps)},
	))

	register(newQuantity("area",
		Unit{Name: "square meters", Symbol: "m²", Aliases: []string{"m^2", "m2"}, conv: lin(1)},
		Unit{Name: "square centimeters", Symbol: "cm²", Aliases: []string{"cm^2", "cm2"}, conv: lin(units.SquareCentimetersToSquareMeters)},
		Unit{Name: "square kilometers", Symbol: "km²", Aliases: []string{"km^2", "km2"}, conv: lin(units.SquareKilometersToSquareMeters)},
		Unit{Name: "square inches", Symbol: "in²", Aliases: []string{"in^2", "in2"}, conv: lin(units.SquareInchesToSquareMeters)},
		Unit{Name: "square feet", Symbol: "ft²", Aliases: []string{"ft^2", "ft2"}, conv: lin(units.SquareFeetToSquareMeters)},
		Unit{Name: "square miles", Symbol: "mi²", Aliases: []string{"mi^2", "mi2"}, conv: lin(units.SquareMilesToSquareMeters)},
		Unit{Name: "hectares", Symbol: "ha", Aliases: []string{"hectare"}, conv: lin(units.HectaresToSquareMeters)},
		Unit{Name: "acres", Symbol: "ac", Aliases: []string{"acre"}, conv: lin(units.AcresToSquareMeters)},
	))

	register(newQuantity("volume",
		Unit{Name: "liters", Symbol: "L", Aliases: []string{"liter", "litre"}, conv: lin(1)},
		Unit{Name: "milliliters", Symbol: "mL", Aliases: []string{"milliliter"}, conv: lin(units.MillilitersToLiters)},
		Unit{Name: "cubic meters", Symbol: "m³", Aliases: []string{"m^3", "m3"}, conv: lin(units.CubicMetersToLiters)},
		Unit{Name: "US gallons", Symbol: "gal", Aliases: []string{"gallon", "us gallon"}, conv: lin(units.GallonsUSToLiters)},
		Unit{Name: "imperial gallons", Symbol: "imp gal", Aliases: []string{"imperial gallon"}, conv: lin(units.GallonsImperialToLiters)},
		Unit{Name: "quarts", Symbol: "qt", Aliases: []string{"quart"}, conv: lin(units.QuartsToLiters)},
		Unit{Name: "pints", Symbol: "pt", Aliases: []string{"pint"}, conv: lin(units.PintsToLiters)},
		Unit{Name: "cups", Symbol: "cup", conv: lin(units.CupsToLiters)},
		Unit{Name: "fluid ounces", Symbol: "fl oz", Aliases: []string{"floz", "fluid ounce"}, conv: lin(units.FluidOuncesToLiters)},
		Unit{Name: "tablespoons", Symbol: "tbsp", Aliases: []string{"tablespoon"}, conv: lin(units.TablespoonsToLiters)},
		Unit{Name: "teaspoons", Symbol: "tsp", Aliases: []string{"teaspoon"}, conv: lin(units.TeaspoonsToLiters)},
	))

	register(newQuantity("pressure",
		Unit{Name: "pascals", Symbol: "Pa", Aliases: []string{"pascal"}, conv: lin(1)},
		Unit{Name: "hectopascals", Symbol: "hPa", Aliases: []string{"hectopascal", "millibar", "mbar"}, conv: lin(units.HectopascalsToPascals)},
		Unit{Name: "kilopascals", Symbol: "kPa", Aliases: []string{"kilopascal"}, conv: lin(units.KilopascalsToPascals)},
		Unit{Name: "bars", Symbol: "bar", conv: lin(units.BarsToPascals)},
		Unit{Name: "atmospheres", Symbol: "atm", Aliases: []string{"atmosphere"}, conv: lin(units.AtmospheresToPascals)},
		Unit{Name: "torr", Symbol: "mmHg", Aliases: []string{"millimeters of mercury"}, conv: lin(units.TorrToPascals)},
		Unit{Name: "pounds per square inch", Symbol: "psi", conv: lin(units.PsiToPascals)},
	))

	register(newQuantity("energy",
		Unit{Name: "joules", Symbol: "J", Aliases: []string{"joule"}, conv: lin(1)},
		Unit{Name: "kilojoules", Symbol: "kJ", Aliases: []string{"kilojoule"}, conv: lin(units.KilojoulesToJoules)},
		Unit{Name: "watt hours", Symbol: "Wh", Aliases: []string{"watt hour"}, conv: lin(units.WattHoursToJoules)},
		Unit{Name: "kilowatt hours", Symbol: "kWh", Aliases: []string{"kilowatt hour"}, conv: lin(units.KilowattHoursToJoules)},
		Unit{Name: "calories", Symbol: "cal", Aliases: []string{"calorie"}, conv: lin(units.CaloriesToJoules)},
		Unit{Name: "kilocalories", Symbol: "kcal", Aliases: []string{"kilocalorie"}, conv: lin(units.KilocaloriesToJoules)},
		Unit{Name: "british thermal units", Symbol: "BTU", conv: lin(units.BTUsToJoules)},
		Unit{Name: "electronvolts", Symbol: "eV", Aliases: []string{"electronvolt"}, conv: lin(units.ElectronvoltsToJoules)},
	))

	register(newQuantity("power",
		Unit{Name: "watts", Symbol: "W", Aliases: []string{"watt"}, conv: lin(1)},
		Unit{Name: "kilowatts", Symbol: "kW", Aliases: []string{"kilowatt"}, conv: lin(units.KilowattsToWatts)},
		Unit{Name: "megawatts", Symbol: "MW", Aliases: []string{"megawatt"}, conv: lin(units.MegawattsToWatts)},
		Unit{Name: "horsepower", Symbol: "hp", conv: lin(units.HorsepowerToWatts)},
	))

	register(newQuantity("force",
		Unit{Name: "newtons", Symbol: "N", Aliases: []string{"newton"}, conv: lin(1)},
		Unit{Name: "kilonewtons", Symbol: "kN", Aliases: []string{"kilonewton"}, conv: lin(units.KilonewtonsToNewtons)},
		Unit{Name: "pounds-force", Symbol: "lbf", Aliases: []string{"pound-force"}, conv: lin(units.PoundsForceToNewtons)},
		Unit{Name: "dynes", Symbol: "dyn", Aliases: []string{"dyne"}, conv: lin(units.DynesToNewtons)},
	))

	register(newQuantity("acceleration",
		Unit{Name: "meters per second squared", Symbol: "m/s²", Aliases: []string{"m/s^2", "m/s2"}, conv: lin(1)},
		Unit{Name: "feet per second squared", Symbol: "ft/s²", Aliases: []string{"ft/s^2", "ft/s2"}, conv: lin(units.FeetPerSecondSquaredToMps2)},
		Unit{Name: "standard gravities", Symbol: "g₀", Aliases: []string{"g0", "standard gravity"}, conv: lin(units.StandardGravityToMps2)},
	))

	register(newQuantity("density",
		Unit{Name: "kilograms per cubic meter", Symbol: "kg/m³", Aliases: []string{"kg/m^3", "kg/m3"}, conv: lin(1)},
		Unit{Name: "grams per cubic centimeter", Symbol: "g/cm³", Aliases: []string{"g/cm^3", "g/cm3"}, conv: lin(units.GramsPerCubicCentimeterToKgm3)},
		Unit{Name: "pounds per cubic foot", Symbol: "lb/ft³", Aliases: []string{"lb/ft^3", "lb/ft3"}, conv: lin(units.PoundsPerCubicFootToKgm3)},
	))

	register(newQuantity("torque",
		Unit{Name: "newton meters", Symbol: "N·m", Aliases: []string{"nm", "n*m", "newton meter"}, conv: lin(1)},
		Unit{Name: "pound feet", Symbol: "lbf·ft", Aliases: []string{"lb-ft", "lbft", "pound foot"}, conv: lin(units.PoundFeetToNewtonMeters)},
	))

	register(newQuantity("current",
		Unit{Name: "amperes", Symbol: "A", Aliases: []string{"ampere", "amp", "amps"}, conv: lin(1)},
		Unit{Name: "milliamperes", Symbol: "mA", Aliases: []string{"milliampere", "milliamp"}, conv: lin(units.MilliamperesToAmperes)},
		Unit{Name: "kiloamperes", Symbol: "kA", Aliases: []string{"kiloampere"}, conv: lin(units.KiloamperesToAmperes)},
	))

	register(newQuantity("voltage",
		Unit{Name: "volts", Symbol: "V", Aliases: []string{"volt"}, conv: lin(1)},
		Unit{Name: "millivolts", Symbol: "mV", Aliases: []string{"millivolt"}, conv: lin(units.MillivoltsToVolts)},
		Unit{Name: "kilovolts", Symbol: "kV", Aliases: []string{"kilovolt"}, conv: lin(units.KilovoltsToVolts)},
	))

	register(newQuantity("resistance",
		Unit{Name: "ohms", Symbol: "Ω", Aliases: []string{"ohm"}, conv: lin(1)},
		Unit{Name: "kiloohms", Symbol: "kΩ", Aliases: []string{"kiloohm", "kohm"}, conv: lin(units.KiloohmsToOhms)},
		Unit{Name: "megaohms", Symbol: "MΩ", Aliases: []string{"megaohm", "mohm"}, conv: lin(units.MegaohmsToOhms)},
	))

	register(newQuantity("frequency",
		Unit{Name: "hertz", Symbol: "Hz", conv: lin(1)},
		Unit{Name: "kilohertz", Symbol: "kHz", conv: lin(units.KilohertzToHertz)},
		Unit{Name: "megahertz", Symbol: "MHz", conv: lin(units.MegahertzToHertz)},
		Unit{Name: "gigahertz", Symbol: "GHz", conv: lin(units.GigahertzToHertz)},
		Unit{Name: "revolutions per minute", Symbol: "rpm", conv: lin(units.RPMToHertz)},
	))

	register(newQuantity("datasize",
		Unit{Name: "bytes", Symbol: "B", Aliases: []string{"byte"}, conv: lin(1)},
		Unit{Name: "bits", Symbol: "bit", conv: lin(units.BitsToBytes)},
		Unit{Name: "kilobytes", Symbol: "kB", Aliases: []string{"kilobyte"}, conv: lin(units.KilobytesToBytes)},
		Unit{Name: "megabytes", Symbol: "MB", Aliases: []string{"megabyte"}, conv: lin(units.MegabytesToBytes)},
		Unit{Name: "gigabytes", Symbol: "GB", Aliases: []string{"gigabyte"}, conv: lin(units.GigabytesToBytes)},
		Unit{Name: "terabytes", Symbol: "TB", Aliases: []string{"terabyte"}, conv: lin(units.TerabytesToBytes)},
		Unit{Name: "kibibytes", Symbol: "KiB", Aliases: []string{"kibibyte"}, conv: lin(units.KibibytesToBytes)},
		Unit{Name: "mebibytes", Symbol: "MiB", Aliases: []string{"mebibyte"}, conv: lin(units.MebibytesToBytes)},
		Unit{Name: "gibibytes", Symbol: "GiB", Aliases: []string{"gibibyte"}, conv: lin(units.GibibytesToBytes)},
		Unit{Name: "tebibytes", Symbol: "TiB", Aliases: []string{"tebibyte"}, conv: lin(units.TebibytesToBytes)},
	))

	register(newQuantity("datarate",
		Unit{Name: "bytes per second", Symbol: "B/s", conv: lin(1)},
		Unit{Name: "kilobytes per second", Symbol: "kB/s", conv: lin(units.KilobytesPerSecondToBps)},
		Unit{Name: "megabytes per second", Symbol: "MB/s", conv: lin(units.MegabytesPerSecondToBps)},
		Unit{Name: "gigabytes per second", Symbol: "GB/s", conv: lin(units.GigabytesPerSecondToBps)},
		Unit{Name: "bits per second", Symbol: "bit/s", Aliases: []string{"bps"}, conv: lin(units.BitsPerSecondToBps)},
		Unit{Name: "kilobits per second", Symbol: "kbit/s", Aliases: []string{"kbps"}, conv: lin(units.KilobitsPerSecondToBps)},
		Unit{Name: "megabits per second", Symbol: "Mbit/s", Aliases: []string{"mbps"}, conv: lin(units.MegabitsPerSecondToBps)},
		Unit{Name: "gigabits per second", Symbol: "Gbit/s", Aliases: []string{"gbps"}, conv: lin(units.GigabitsPerSecondToBps)},
	))

	register(newQuantity("angle",
		Unit{Name: "radians", Symbol: "rad", Aliases: []string{"radian"}, conv: lin(1)},
		Unit{Name: "degrees", Symbol: "°", Aliases: []string{"deg", "degree"}, conv: lin(units.DegreesToRadians)},
		Unit{Name: "gradians", Symbol: "gon", Aliases: []string{"gradian", "grad"}, conv: lin(units.GradiansToRadians)},
		Unit{Name: "arcminutes", Symbol: "′", Aliases: []string{"arcmin", "arcminute"}, conv: lin(units.ArcminutesToRadians)},
		Unit{Name: "arcseconds", Symbol: "″", Aliases: []string{"arcsec", "arcsecond"}, conv: lin(units.ArcsecondsToRadians)},
		Unit{Name: "revolutions", Symbol: "rev", Aliases: []string{"revolution", "turn"}, conv: lin(units.RevolutionsToRadians)},
	))

	register(newQuantity("fuel",
		Unit{Name: "liters per 100 kilometers", Symbol: "L/100km", conv: lin(1)},
		Unit{Name: "kilometers per liter", Symbol: "km/L", conv: measure.Reciprocal(units.KilometersPerLiterFactor)},
		Unit{Name: "miles per US gallon", Symbol: "mpg", Aliases: []string{"mpg (us)", "mpgus"}, conv: measure.Reciprocal(units.MilesPerGallonUSFactor)},
		Unit{Name: "miles per imperial gallon", Symbol: "mpg (imp)", Aliases: []string{"mpgimp"}, conv: measure.Reciprocal(units.MilesPerGallonImperialFactor)},
	))
}
