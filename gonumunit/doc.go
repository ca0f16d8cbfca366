// SPDX-License-Identifier: MIT

// Package gonumunit converts between lvunits quantities and the SI-only
// values of gonum.org/v1/gonum/unit.
//
// A gonum *unit.Unit carries a float64 in coherent SI base units plus a map of
// base-dimension powers. Quantities of any numeric backend cross the boundary
// through their canonical value, so a Quantity in kilometres becomes a gonum
// value in metres:
//
//	g, err := gonumunit.ToGonum(si.Kilometers.Of(1.5))   // 1500 m
//	q, err := gonumunit.FromGonum(gounit.Length(3), si.Feet)
//
// Only the eight base keys of package dimension have a gonum counterpart.
// Vectors using any other key, and gonum dimensions created with
// unit.NewDimension, report ErrUnmappedDimension.
package gonumunit
