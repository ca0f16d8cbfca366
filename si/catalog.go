// SPDX-License-Identifier: MIT

package si

import (
	"math"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// build derives the whole catalog. Every unit except Scalar is registered.
func (s *System[N]) build() error {
	b := &builder[N]{sys: s}

	// Ratio.
	s.Scalar = b.base("", dimension.One)
	s.Percent = b.named("%", b.times(s.Scalar, 1e-2))
	s.Permille = b.named("‰", b.times(s.Scalar, 1e-3))
	s.Permyriad = b.named("‱", b.times(s.Scalar, 1e-4))

	// Angle.
	s.Radians = b.named("rad", b.base("rad", dimension.Angle))
	s.Degrees = b.named("°", b.per(b.times(s.Radians, math.Pi), 180))
	s.Turns = b.named("τ", b.times(s.Radians, 2*math.Pi))
	s.Steradians = b.named("sr", b.base("sr", dimension.SolidAngle))
	s.SquareDegrees = b.named("deg²", b.squared(s.Degrees))

	// Length.
	s.Meters = b.named("m", b.base("m", dimension.Length))
	s.Kilometers = b.named("km", b.prefixed(s.Meters, unit.Kilo))
	s.Centimeters = b.named("cm", b.prefixed(s.Meters, unit.Centi))
	s.Millimeters = b.named("mm", b.prefixed(s.Meters, unit.Milli))
	s.Micrometers = b.named("μm", b.prefixed(s.Meters, unit.Micro))
	s.Nanometers = b.named("nm", b.prefixed(s.Meters, unit.Nano))
	s.Picometers = b.named("pm", b.prefixed(s.Meters, unit.Pico))
	s.Femtometers = b.named("fm", b.prefixed(s.Meters, unit.Femto))
	s.Angstroms = b.named("Å", b.times(s.Meters, 1e-10))
	s.Yards = b.named("yd", b.times(s.Meters, 0.9144))
	s.Feet = b.named("ft", b.per(s.Yards, 3))
	s.Inches = b.named("in", b.per(s.Feet, 12))
	s.Chains = b.named("ch", b.times(s.Yards, 22))
	s.Furlongs = b.named("fur", b.times(s.Chains, 10))
	s.Miles = b.named("mi", b.times(s.Furlongs, 8))
	s.Fathoms = b.named("ftm", b.times(s.Yards, 2))
	s.NauticalMiles = b.named("M", b.times(s.Meters, 1852))
	s.AstronomicalUnits = b.named("au", b.times(s.Meters, 149597870700))

	s.SquareMeters = b.named("m²", b.squared(s.Meters))
	s.CubicMeters = b.named("m³", b.cubed(s.Meters))

	// Time. Minutes use "min" so they do not shadow meters.
	s.Seconds = b.named("s", b.base("s", dimension.Time))
	s.Milliseconds = b.named("ms", b.prefixed(s.Seconds, unit.Milli))
	s.Microseconds = b.named("μs", b.prefixed(s.Seconds, unit.Micro))
	s.Nanoseconds = b.named("ns", b.prefixed(s.Seconds, unit.Nano))
	s.Minutes = b.named("min", b.times(s.Seconds, 60))
	s.Hours = b.named("h", b.times(s.Minutes, 60))

	// Mass.
	s.Kilograms = b.named("kg", b.base("kg", dimension.Mass))
	s.Grams = b.named("g", b.times(s.Kilograms, 1e-3))
	s.Pounds = b.named("lb", b.times(s.Kilograms, 0.45359237))

	// Temperature.
	s.Kelvin = b.named("K", b.base("K", dimension.Temperature))
	s.Celsius = b.named("°C", b.offset(s.Kelvin, -273.15))
	s.Fahrenheit = b.named("°F", b.offset(b.per(b.times(s.Kelvin, 5), 9), -459.67))
	s.Rankine = b.named("°R", b.per(s.Kelvin, 1.8))

	// Speed.
	s.MetersPerSecond = b.named("m/s", b.over(s.Meters, s.Seconds))
	s.KilometersPerHour = b.named("km/h", b.over(s.Kilometers, s.Hours))
	s.MilesPerHour = b.named("mph", b.over(s.Miles, s.Hours))
	s.Knots = b.named("kn", b.over(s.NauticalMiles, s.Hours))
	s.FeetPerSecond = b.named("fps", b.over(s.Feet, s.Seconds))

	// Mechanics.
	s2 := b.squared(s.Seconds)
	s3 := b.cubed(s.Seconds)
	m2 := b.squared(s.Meters)
	kgm2 := b.product(s.Kilograms, m2)

	s.Hertz = b.named("Hz", b.reciprocal(s.Seconds))
	s.Newtons = b.named("N", b.over(b.product(s.Kilograms, s.Meters), s2))
	s.Joules = b.named("J", b.over(kgm2, s2))
	s.Watts = b.named("W", b.over(kgm2, s3))
	s.Pascals = b.named("Pa", b.over(b.over(s.Kilograms, s.Meters), s2))

	// Electricity and magnetism.
	s.Amperes = b.named("A", b.base("A", dimension.Current))
	a2 := b.squared(s.Amperes)

	s.Coulombs = b.named("C", b.product(s.Amperes, s.Seconds))
	s.Volts = b.named("V", b.over(b.over(kgm2, s3), s.Amperes))
	s.Ohms = b.named("Ω", b.over(b.over(kgm2, s3), a2))
	s.Siemens = b.named("S", b.over(b.over(b.product(s3, a2), s.Kilograms), m2))
	s.Farads = b.named("F", b.over(b.over(b.product(b.squared(s2), a2), s.Kilograms), m2))
	s.Microfarads = b.named("μF", b.prefixed(s.Farads, unit.Micro))
	s.Nanofarads = b.named("nF", b.prefixed(s.Farads, unit.Nano))
	s.Picofarads = b.named("pF", b.prefixed(s.Farads, unit.Pico))
	s.Henries = b.named("H", b.over(b.over(kgm2, s2), a2))
	s.Webers = b.named("Wb", b.over(b.over(kgm2, s2), s.Amperes))
	s.Teslas = b.named("T", b.over(b.over(s.Kilograms, s2), s.Amperes))

	// Photometry.
	s.Candelas = b.named("cd", b.base("cd", dimension.LuminousIntensity))
	s.Lumens = b.named("lm", b.product(s.Candelas, s.Steradians))
	s.Lux = b.named("lx", b.over(s.Lumens, m2))

	// Radiation.
	s.Grays = b.named("Gy", b.over(m2, s2))
	s.Sieverts = b.named("Sv", b.over(m2, s2))
	s.Becquerels = b.named("Bq", b.reciprocal(s.Seconds))

	s.Moles = b.named("mol", b.base("mol", dimension.Amount))

	return b.err
}
