// SPDX-License-Identifier: MIT

package si

import (
	"fmt"

	"github.com/katalvlaran/lvunits/unit"
)

// Sin returns the sine of angle, which may be in any angle unit.
func (s *System[N]) Sin(angle unit.Quantity[N]) (N, error) {
	return s.unary(angle, "sin", func(x N) N { return s.geo.Sin(x) })
}

// Cos returns the cosine of angle.
func (s *System[N]) Cos(angle unit.Quantity[N]) (N, error) {
	return s.unary(angle, "cos", func(x N) N { return s.geo.Cos(x) })
}

// Tan returns the tangent of angle.
func (s *System[N]) Tan(angle unit.Quantity[N]) (N, error) {
	return s.unary(angle, "tan", func(x N) N { return s.geo.Tan(x) })
}

// Asin returns the arcsine of x in radians.
func (s *System[N]) Asin(x N) (unit.Quantity[N], error) {
	if s.geo == nil {
		return unit.Quantity[N]{}, ErrNoGeometry
	}

	return s.Radians.Of(s.geo.Asin(x)), nil
}

// Acos returns the arc cosine of x in radians.
func (s *System[N]) Acos(x N) (unit.Quantity[N], error) {
	if s.geo == nil {
		return unit.Quantity[N]{}, ErrNoGeometry
	}

	return s.Radians.Of(s.geo.Acos(x)), nil
}

// Atan returns the arctangent of x in radians.
func (s *System[N]) Atan(x N) (unit.Quantity[N], error) {
	if s.geo == nil {
		return unit.Quantity[N]{}, ErrNoGeometry
	}

	return s.Radians.Of(s.geo.Atan(x)), nil
}

// Atan2 returns the angle in radians from the positive x axis to (x, y).
func (s *System[N]) Atan2(y, x N) (unit.Quantity[N], error) {
	if s.geo == nil {
		return unit.Quantity[N]{}, ErrNoGeometry
	}

	return s.Radians.Of(s.geo.Atan2(y, x)), nil
}

func (s *System[N]) unary(angle unit.Quantity[N], name string, f func(N) N) (N, error) {
	var zero N
	if s.geo == nil {
		return zero, ErrNoGeometry
	}
	rad, err := angle.In(s.Radians)
	if err != nil {
		return zero, fmt.Errorf("si: %s(%s): %w", name, angle, err)
	}

	return f(rad.Amount()), nil
}
