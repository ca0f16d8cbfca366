// SPDX-License-Identifier: MIT

package si

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvunits/dimension"
)

type namedDimension struct {
	name string
	vec  dimension.Vector
}

// dimensionNames lists the named dimensions of the catalog. Frequency and
// Radioactivity share a vector; DimensionName reports the first entry.
var dimensionNames = []namedDimension{
	{"ratio", dimension.One},
	{"length", dimension.Length},
	{"time", dimension.Time},
	{"mass", dimension.Mass},
	{"temperature", dimension.Temperature},
	{"current", dimension.Current},
	{"amount", dimension.Amount},
	{"luminousIntensity", dimension.LuminousIntensity},
	{"angle", dimension.Angle},
	{"solidAngle", dimension.SolidAngle},
	{"area", dimension.Area},
	{"volume", dimension.Volume},
	{"speed", dimension.Speed},
	{"acceleration", dimension.Acceleration},
	{"frequency", dimension.Frequency},
	{"radioactivity", dimension.Radioactivity},
	{"force", dimension.Force},
	{"energy", dimension.Energy},
	{"power", dimension.Power},
	{"pressure", dimension.Pressure},
	{"charge", dimension.Charge},
	{"voltage", dimension.Voltage},
	{"resistance", dimension.Resistance},
	{"conductance", dimension.Conductance},
	{"capacitance", dimension.Capacitance},
	{"inductance", dimension.Inductance},
	{"magneticFlux", dimension.MagneticFlux},
	{"magneticInduction", dimension.MagneticInduction},
	{"luminousFlux", dimension.LuminousFlux},
	{"illuminance", dimension.Illuminance},
	{"dose", dimension.Dose},
}

// DimensionNames returns the known dimension names in catalog order.
func DimensionNames() []string {
	out := make([]string, 0, len(dimensionNames))
	for _, d := range dimensionNames {
		out = append(out, d.name)
	}

	return out
}

// DimensionByName returns the dimension registered under name.
func DimensionByName(name string) (dimension.Vector, error) {
	i := slices.IndexFunc(dimensionNames, func(d namedDimension) bool { return d.name == name })
	if i < 0 {
		return dimension.Vector{}, fmt.Errorf("si: %q: %w", name, ErrUnknownDimension)
	}

	return dimensionNames[i].vec, nil
}

// DimensionName returns the first name whose vector equals v, or "" when v
// has no name.
func DimensionName(v dimension.Vector) string {
	for _, d := range dimensionNames {
		if d.vec.Equal(v) {
			return d.name
		}
	}

	return ""
}
