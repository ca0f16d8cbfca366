// SPDX-License-Identifier: MIT

package gonumunit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
	gounit "gonum.org/v1/gonum/unit"
)

var toGonum = map[string]gounit.Dimension{
	dimension.KeyCurrent:           gounit.CurrentDim,
	dimension.KeyLength:            gounit.LengthDim,
	dimension.KeyLuminousIntensity: gounit.LuminousIntensityDim,
	dimension.KeyMass:              gounit.MassDim,
	dimension.KeyAmount:            gounit.MoleDim,
	dimension.KeyTemperature:       gounit.TemperatureDim,
	dimension.KeyTime:              gounit.TimeDim,
	dimension.KeyAngle:             gounit.AngleDim,
}

var fromGonum = func() map[gounit.Dimension]string {
	m := make(map[gounit.Dimension]string, len(toGonum))
	for k, d := range toGonum {
		m[d] = k
	}
	return m
}()

// Dimensions maps v onto gonum base dimensions.
func Dimensions(v dimension.Vector) (gounit.Dimensions, error) {
	out := make(gounit.Dimensions, v.Len())
	for _, k := range v.Keys() {
		d, ok := toGonum[k]
		if !ok {
			return nil, fmt.Errorf("gonumunit: key %q: %w", k, ErrUnmappedDimension)
		}
		out[d] = int(v.Get(k))
	}

	return out, nil
}

// Vector maps gonum dimensions back onto a dimension.Vector.
//
// Errors: ErrUnmappedDimension, or dimension.ErrInvalidExponent when a power
// lies outside the exponent range.
func Vector(d gounit.Dimensions) (dimension.Vector, error) {
	m := make(map[string]int, len(d))
	for gd, pow := range d {
		if pow == 0 {
			continue
		}
		k, ok := fromGonum[gd]
		if !ok {
			return dimension.One, fmt.Errorf("gonumunit: %v: %w", gd, ErrUnmappedDimension)
		}
		m[k] = pow
	}

	return dimension.New(m)
}

// ToGonum returns q's canonical value as a gonum unit.
func ToGonum[N any](q unit.Quantity[N]) (*gounit.Unit, error) {
	u := q.Unit()
	if u == nil {
		return nil, unit.ErrNilQuantity
	}
	dims, err := Dimensions(u.Dimension())
	if err != nil {
		return nil, err
	}

	return gounit.New(u.Arithmetic().ToNative(q.Value()), dims), nil
}

// FromGonum converts a gonum value into target.
//
// Errors: unit.ErrNilUnit, ErrUnmappedDimension, ErrDimensionMismatch, or
// whatever the backend reports for the value.
func FromGonum[N any](g gounit.Uniter, target *unit.Unit[N]) (unit.Quantity[N], error) {
	if target == nil {
		return unit.Quantity[N]{}, unit.ErrNilUnit
	}
	gu := g.Unit()
	dim, err := Vector(gu.Dimensions())
	if err != nil {
		return unit.Quantity[N]{}, err
	}
	if !dim.Equal(target.Dimension()) {
		return unit.Quantity[N]{}, fmt.Errorf("gonumunit: %s into %s: %w", dim, target.Dimension(), ErrDimensionMismatch)
	}

	base, err := unit.NewFactory(target.Arithmetic()).MakeUnit("", dim)
	if err != nil {
		return unit.Quantity[N]{}, err
	}
	q, err := base.OfNative(gu.Value())
	if err != nil {
		return unit.Quantity[N]{}, fmt.Errorf("gonumunit: %v: %w", gu.Value(), err)
	}

	return q.In(target)
}
