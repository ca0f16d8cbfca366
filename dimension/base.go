// SPDX-License-Identifier: MIT

package dimension

// Base-quantity keys. Any non-empty string is a valid key; these are the ones
// the si catalog and the gonum adapter agree on.
const (
	KeyLength            = "length"
	KeyTime              = "time"
	KeyMass              = "mass"
	KeyTemperature       = "temperature"
	KeyCurrent           = "current"
	KeyAmount            = "amount"
	KeyLuminousIntensity = "luminousIntensity"

	// KeyAngle is an artificial tag that keeps plane angles apart from plain ratios.
	KeyAngle = "angle"
)

// One is the dimension of a dimensionless quantity, denoted [1].
var One = Vector{}

// Base dimensions.
var (
	Length            = Base(KeyLength)
	Time              = Base(KeyTime)
	Mass              = Base(KeyMass)
	Temperature       = Base(KeyTemperature)
	Current           = Base(KeyCurrent)
	Amount            = Base(KeyAmount)
	LuminousIntensity = Base(KeyLuminousIntensity)
	Angle             = Base(KeyAngle)
)

// Derived dimensions used by the catalog.
var (
	Area              = MustNew(map[string]int{KeyLength: 2})
	Volume            = MustNew(map[string]int{KeyLength: 3})
	Speed             = MustNew(map[string]int{KeyLength: 1, KeyTime: -1})
	Acceleration      = MustNew(map[string]int{KeyLength: 1, KeyTime: -2})
	Frequency         = MustNew(map[string]int{KeyTime: -1})
	Force             = MustNew(map[string]int{KeyMass: 1, KeyLength: 1, KeyTime: -2})
	Energy            = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2})
	Power             = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3})
	Pressure          = MustNew(map[string]int{KeyMass: 1, KeyLength: -1, KeyTime: -2})
	Charge            = MustNew(map[string]int{KeyTime: 1, KeyCurrent: 1})
	Voltage           = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3, KeyCurrent: -1})
	Resistance        = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -3, KeyCurrent: -2})
	Conductance       = MustNew(map[string]int{KeyMass: -1, KeyLength: -2, KeyTime: 3, KeyCurrent: 2})
	Capacitance       = MustNew(map[string]int{KeyMass: -1, KeyLength: -2, KeyTime: 4, KeyCurrent: 2})
	Inductance        = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2, KeyCurrent: -2})
	MagneticFlux      = MustNew(map[string]int{KeyMass: 1, KeyLength: 2, KeyTime: -2, KeyCurrent: -1})
	MagneticInduction = MustNew(map[string]int{KeyMass: 1, KeyTime: -2, KeyCurrent: -1})
	SolidAngle        = MustNew(map[string]int{KeyAngle: 2})
	LuminousFlux      = MustNew(map[string]int{KeyLuminousIntensity: 1, KeyAngle: 2})
	Illuminance       = MustNew(map[string]int{KeyLuminousIntensity: 1, KeyAngle: 2, KeyLength: -2})
	Dose              = MustNew(map[string]int{KeyLength: 2, KeyTime: -2})
	Radioactivity     = MustNew(map[string]int{KeyTime: -1})
)
