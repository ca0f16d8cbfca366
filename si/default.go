// SPDX-License-Identifier: MIT

package si

import (
	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/unit"
)

// Default is the float64 system. Building it cannot fail; a failure is a bug
// in the catalog and panics at init.
var Default = unit.Must(NewSystem(unit.Float, arithmetic.Float64{}))

// Frequently used float64 units of Default.
var (
	Scalar  = Default.Scalar
	Percent = Default.Percent

	Radians = Default.Radians
	Degrees = Default.Degrees

	Meters      = Default.Meters
	Kilometers  = Default.Kilometers
	Centimeters = Default.Centimeters
	Millimeters = Default.Millimeters
	Feet        = Default.Feet
	Inches      = Default.Inches
	Miles       = Default.Miles

	Seconds = Default.Seconds
	Minutes = Default.Minutes
	Hours   = Default.Hours

	Kilograms = Default.Kilograms
	Grams     = Default.Grams

	Kelvin     = Default.Kelvin
	Celsius    = Default.Celsius
	Fahrenheit = Default.Fahrenheit
	Rankine    = Default.Rankine

	MetersPerSecond   = Default.MetersPerSecond
	KilometersPerHour = Default.KilometersPerHour

	Newtons = Default.Newtons
	Joules  = Default.Joules
	Watts   = Default.Watts
)
