// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/dimension"
)

// Unit is a measurement unit of a particular dimension: the meter, the foot
// and the mile are all units of length. Units of the same dimension convert
// into each other through their scale (ratio to the base unit) and offset
// (datum shift, in the unit's own amounts).
//
// A Unit is immutable. Every derivation returns a new *Unit.
type Unit[N any] struct {
	symbol string
	dim    dimension.Vector
	scale  N
	offset N
	arith  arithmetic.Arithmetic[N]
}

// Symbol returns the display symbol, e.g. "m" or "m/s".
func (u *Unit[N]) Symbol() string { return u.symbol }

// Dimension returns the dimension vector of u.
func (u *Unit[N]) Dimension() dimension.Vector { return u.dim }

// Scale returns the ratio of u to the base unit of its dimension.
func (u *Unit[N]) Scale() N { return u.scale }

// Offset returns the datum offset of u.
func (u *Unit[N]) Offset() N { return u.offset }

// Arithmetic returns the numeric backend of u.
func (u *Unit[N]) Arithmetic() arithmetic.Arithmetic[N] { return u.arith }

// HasOffset reports whether the offset is non-zero.
func (u *Unit[N]) HasOffset() bool {
	return !arithmetic.IsZero(u.arith, u.offset)
}

// String returns the symbol.
func (u *Unit[N]) String() string {
	if u == nil {
		return "<nil>"
	}

	return u.symbol
}

// Of returns amount measured in u.
func (u *Unit[N]) Of(amount N) Quantity[N] {
	return Quantity[N]{amount: amount, unit: u}
}

// OfNative converts amount with the backend and returns it measured in u.
func (u *Unit[N]) OfNative(amount float64) (Quantity[N], error) {
	a, err := u.arith.FromNative(amount)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: %v%s: %w", amount, u.symbol, err)
	}

	return u.Of(a), nil
}

// WithSymbol returns a copy of u with a new symbol.
func (u *Unit[N]) WithSymbol(symbol string) *Unit[N] {
	return u.derive(symbol, u.dim, u.scale, u.offset)
}

// TimesScalar rescales u by k: the result has scale s×k and offset o/k, so
// the datum stays where it was in base-unit terms. The symbol is kept; name
// the result with WithSymbol.
//
//	yards := meters.TimesScalar(0.9144) // then .WithSymbol("yd")
func (u *Unit[N]) TimesScalar(k N) (*Unit[N], error) {
	if arithmetic.IsZero(u.arith, k) {
		return nil, fmt.Errorf("unit: %s times 0: %w", u.symbol, ErrZeroScale)
	}
	offset, err := u.arith.Div(u.offset, k)
	if err != nil {
		return nil, fmt.Errorf("unit: %s times scalar: %w", u.symbol, err)
	}

	return u.derive(u.symbol, u.dim, u.arith.Mul(u.scale, k), offset), nil
}

// PerScalar rescales u by 1/k: scale s/k and offset o×k.
func (u *Unit[N]) PerScalar(k N) (*Unit[N], error) {
	if arithmetic.IsZero(u.arith, k) {
		return nil, fmt.Errorf("unit: %s per 0: %w", u.symbol, ErrZeroScale)
	}
	scale, err := u.arith.Div(u.scale, k)
	if err != nil {
		return nil, fmt.Errorf("unit: %s per scalar: %w", u.symbol, err)
	}

	return u.derive(u.symbol, u.dim, scale, u.arith.Mul(u.offset, k)), nil
}

// WithOffset shifts the datum of u by delta (in u's amounts). The symbol
// records the shift, e.g. "K - 273.15"; a zero delta returns u itself.
//
//	celsius := kelvin.WithOffset(-273.15).WithSymbol("°C")
func (u *Unit[N]) WithOffset(delta N) *Unit[N] {
	if arithmetic.IsZero(u.arith, delta) {
		return u
	}

	d := u.arith.ToNative(delta)
	sign := "+"
	if d < 0 {
		sign, d = "-", -d
	}
	symbol := fmt.Sprintf("%s %s %s", u.symbol, sign, formatAmount(d))

	return u.derive(symbol, u.dim, u.scale, u.arith.Add(u.offset, delta))
}

func (u *Unit[N]) derive(symbol string, dim dimension.Vector, scale, offset N) *Unit[N] {
	return &Unit[N]{
		symbol: symbol,
		dim:    dim,
		scale:  scale,
		offset: offset,
		arith:  u.arith,
	}
}

// one returns the backend's 1. Every backend represents it exactly.
func (u *Unit[N]) one() N {
	v, _ := u.arith.FromNative(1)
	return v
}
