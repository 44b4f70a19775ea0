package units

import (
	"math"
	"testing"

	"quanta/internal/measure"
)

// closeRel reports whether got is within 1e-9 relative tolerance of want.
func closeRel(got, want float64) bool {
	if got == want {
		return true
	}
	denom := math.Abs(want)
	if denom == 0 {
		denom = 1
	}
	return math.Abs(got-want)/denom < 1e-9
}

func TestRoundTrips(t *testing.T) {
	const v = 123.456

	tests := []struct {
		name string
		got  float64
	}{
		{"millimeters", Millimeters(v).Millimeters()},
		{"centimeters", Centimeters(v).Centimeters()},
		{"meters", Meters(v).Meters()},
		{"kilometers", Kilometers(v).Kilometers()},
		{"inches", Inches(v).Inches()},
		{"feet", Feet(v).Feet()},
		{"yards", Yards(v).Yards()},
		{"miles", Miles(v).Miles()},
		{"nautical miles", NauticalMiles(v).NauticalMiles()},

		{"milligrams", Milligrams(v).Milligrams()},
		{"grams", Grams(v).Grams()},
		{"kilograms", Kilograms(v).Kilograms()},
		{"tonnes", Tonnes(v).Tonnes()},
		{"ounces", Ounces(v).Ounces()},
		{"pounds", Pounds(v).Pounds()},
		{"stones", Stones(v).Stones()},

		{"milliseconds", Milliseconds(v).Milliseconds()},
		{"seconds", Seconds(v).Seconds()},
		{"minutes", Minutes(v).Minutes()},
		{"hours", Hours(v).Hours()},
		{"days", Days(v).Days()},
		{"weeks", Weeks(v).Weeks()},

		{"kelvin", Kelvin(v).Kelvin()},
		{"celsius", Celsius(v).Celsius()},
		{"fahrenheit", Fahrenheit(v).Fahrenheit()},

		{"meters per second", MetersPerSecond(v).MetersPerSecond()},
		{"kilometers per hour", KilometersPerHour(v).KilometersPerHour()},
		{"miles per hour", MilesPerHour(v).MilesPerHour()},
		{"knots", Knots(v).Knots()},
		{"feet per second", FeetPerSecond(v).FeetPerSecond()},

		{"square centimeters", SquareCentimeters(v).SquareCentimeters()},
		{"square meters", SquareMeters(v).SquareMeters()},
		{"square kilometers", SquareKilometers(v).SquareKilometers()},
		{"square inches", SquareInches(v).SquareInches()},
		{"square feet", SquareFeet(v).SquareFeet()},
		{"square miles", SquareMiles(v).SquareMiles()},
		{"hectares", Hectares(v).Hectares()},
		{"acres", Acres(v).Acres()},

		{"milliliters", Milliliters(v).Milliliters()},
		{"liters", Liters(v).Liters()},
		{"cubic meters", CubicMeters(v).CubicMeters()},
		{"US gallons", GallonsUS(v).GallonsUS()},
		{"imperial gallons", GallonsImperial(v).GallonsImperial()},
		{"quarts", Quarts(v).Quarts()},
		{"pints", Pints(v).Pints()},
		{"cups", Cups(v).Cups()},
		{"fluid ounces", FluidOunces(v).FluidOunces()},
		{"tablespoons", Tablespoons(v).Tablespoons()},
		{"teaspoons", Teaspoons(v).Teaspoons()},

		{"pascals", Pascals(v).Pascals()},
		{"hectopascals", Hectopascals(v).Hectopascals()},
		{"kilopascals", Kilopascals(v).Kilopascals()},
		{"bars", Bars(v).Bars()},
		{"atmospheres", Atmospheres(v).Atmospheres()},
		{"torr", Torr(v).Torr()},
		{"psi", Psi(v).Psi()},

		{"joules", Joules(v).Joules()},
		{"kilojoules", Kilojoules(v).Kilojoules()},
		{"watt hours", WattHours(v).WattHours()},
		{"kilowatt hours", KilowattHours(v).KilowattHours()},
		{"calories", Calories(v).Calories()},
		{"kilocalories", Kilocalories(v).Kilocalories()},
		{"BTUs", BTUs(v).BTUs()},
		{"electronvolts", Electronvolts(v).Electronvolts()},

		{"watts", Watts(v).Watts()},
		{"kilowatts", Kilowatts(v).Kilowatts()},
		{"megawatts", Megawatts(v).Megawatts()},
		{"horsepower", Horsepower(v).Horsepower()},

		{"newtons", Newtons(v).Newtons()},
		{"kilonewtons", Kilonewtons(v).Kilonewtons()},
		{"pounds-force", PoundsForce(v).PoundsForce()},
		{"dynes", Dynes(v).Dynes()},

		{"meters per second squared", MetersPerSecondSquared(v).MetersPerSecondSquared()},
		{"feet per second squared", FeetPerSecondSquared(v).FeetPerSecondSquared()},
		{"standard gravities", StandardGravities(v).StandardGravities()},

		{"kilograms per cubic meter", KilogramsPerCubicMeter(v).KilogramsPerCubicMeter()},
		{"grams per cubic centimeter", GramsPerCubicCentimeter(v).GramsPerCubicCentimeter()},
		{"pounds per cubic foot", PoundsPerCubicFoot(v).PoundsPerCubicFoot()},

		{"newton meters", NewtonMeters(v).NewtonMeters()},
		{"pound feet", PoundFeet(v).PoundFeet()},

		{"milliamperes", Milliamperes(v).Milliamperes()},
		{"amperes", Amperes(v).Amperes()},
		{"kiloamperes", Kiloamperes(v).Kiloamperes()},

		{"millivolts", Millivolts(v).Millivolts()},
		{"volts", Volts(v).Volts()},
		{"kilovolts", Kilovolts(v).Kilovolts()},

		{"ohms", Ohms(v).Ohms()},
		{"kiloohms", Kiloohms(v).Kiloohms()},
		{"megaohms", Megaohms(v).Megaohms()},

		{"hertz", Hertz(v).Hertz()},
		{"kilohertz", Kilohertz(v).Kilohertz()},
		{"megahertz", Megahertz(v).Megahertz()},
		{"gigahertz", Gigahertz(v).Gigahertz()},
		{"revolutions per minute", RevolutionsPerMinute(v).RevolutionsPerMinute()},

		{"bits", Bits(v).Bits()},
		{"bytes", Bytes(v).Bytes()},
		{"kilobytes", Kilobytes(v).Kilobytes()},
		{"megabytes", Megabytes(v).Megabytes()},
		{"gigabytes", Gigabytes(v).Gigabytes()},
		{"terabytes", Terabytes(v).Terabytes()},
		{"kibibytes", Kibibytes(v).Kibibytes()},
		{"mebibytes", Mebibytes(v).Mebibytes()},
		{"gibibytes", Gibibytes(v).Gibibytes()},
		{"tebibytes", Tebibytes(v).Tebibytes()},

		{"bytes per second", BytesPerSecond(v).BytesPerSecond()},
		{"kilobytes per second", KilobytesPerSecond(v).KilobytesPerSecond()},
		{"megabytes per second", MegabytesPerSecond(v).MegabytesPerSecond()},
		{"gigabytes per second", GigabytesPerSecond(v).GigabytesPerSecond()},
		{"bits per second", BitsPerSecond(v).BitsPerSecond()},
		{"kilobits per second", KilobitsPerSecond(v).KilobitsPerSecond()},
		{"megabits per second", MegabitsPerSecond(v).MegabitsPerSecond()},
		{"gigabits per second", GigabitsPerSecond(v).GigabitsPerSecond()},

		{"radians", Radians(v).Radians()},
		{"degrees", Degrees(v).Degrees()},
		{"gradians", Gradians(v).Gradians()},
		{"arcminutes", Arcminutes(v).Arcminutes()},
		{"arcseconds", Arcseconds(v).Arcseconds()},
		{"revolutions", Revolutions(v).Revolutions()},

		{"liters per 100 km", LitersPer100Kilometers(v).LitersPer100Kilometers()},
		{"kilometers per liter", KilometersPerLiter(v).KilometersPerLiter()},
		{"miles per US gallon", MilesPerGallonUS(v).MilesPerGallonUS()},
		{"miles per imperial gallon", MilesPerGallonImperial(v).MilesPerGallonImperial()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !closeRel(tt.got, v) {
				t.Errorf("round trip = %v, want %v", tt.got, v)
			}
		})
	}
}

func TestKnownConversions(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{
			name:     "1 mile in kilometers",
			got:      Miles(1).Kilometers(),
			expected: 1.609344,
		},
		{
			name:     "1 pound in grams",
			got:      Pounds(1).Grams(),
			expected: 453.59237,
		},
		{
			name:     "1 atmosphere in pascals",
			got:      Atmospheres(1).Pascals(),
			expected: 101325,
		},
		{
			name:     "760 torr is one atmosphere",
			got:      Torr(760).Atmospheres(),
			expected: 1,
		},
		{
			name:     "1 kWh in joules",
			got:      KilowattHours(1).Joules(),
			expected: 3.6e6,
		},
		{
			name:     "100 km/h in m/s",
			got:      KilometersPerHour(100).MetersPerSecond(),
			expected: 27.77777777777778,
		},
		{
			name:     "1 acre in square meters",
			got:      Acres(1).SquareMeters(),
			expected: 4046.8564224,
		},
		{
			name:     "1 US gallon in liters",
			got:      GallonsUS(1).Liters(),
			expected: 3.785411784,
		},
		{
			name:     "180 degrees in radians",
			got:      Degrees(180).Radians(),
			expected: math.Pi,
		},
		{
			name:     "3000 rpm in hertz",
			got:      RevolutionsPerMinute(3000).Hertz(),
			expected: 50,
		},
		{
			name:     "1 GiB in bytes",
			got:      Gibibytes(1).Bytes(),
			expected: 1073741824,
		},
		{
			name:     "8 megabits per second in megabytes per second",
			got:      MegabitsPerSecond(8).MegabytesPerSecond(),
			expected: 1,
		},
		{
			name:     "23.52 mpg(US) is 10 L/100km",
			got:      MilesPerGallonUS(23.52145832947351).LitersPer100Kilometers(),
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !closeRel(tt.got, tt.expected) {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Run("5 km plus 500 m is 5.5 km", func(t *testing.T) {
		total := measure.Add(Kilometers(5), Meters(500))
		if !closeRel(total.Kilometers(), 5.5) {
			t.Errorf("got %v km, want 5.5", total.Kilometers())
		}
	})

	t.Run("10 kg doubled is about 44.09 lb", func(t *testing.T) {
		doubled := measure.Scale(Kilograms(10), 2)
		if math.Abs(doubled.Pounds()-44.0924524) > 1e-6 {
			t.Errorf("got %v lb, want ~44.09", doubled.Pounds())
		}
	})

	t.Run("100 km to 50 km ratio is 2", func(t *testing.T) {
		if r := measure.Ratio(Kilometers(100), Kilometers(50)); r != 2.0 {
			t.Errorf("got %v, want 2", r)
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"length", Meters(5).String(), "5 m"},
		{"mass", Grams(250).String(), "250 g"},
		{"speed", MetersPerSecond(12.5).String(), "12.5 m/s"},
		{"temperature", Kelvin(273.15).String(), "273.15 K"},
		{"resistance", Ohms(4700).String(), "4700 Ω"},
		{"fuel economy", LitersPer100Kilometers(6.5).String(), "6.5 L/100km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("String() = %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
