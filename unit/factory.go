// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/dimension"
)

// Factory builds units and quantities over one numeric backend.
type Factory[N any] struct {
	arith arithmetic.Arithmetic[N]
}

// NewFactory returns a Factory bound to a. It panics if a is nil.
func NewFactory[N any](a arithmetic.Arithmetic[N]) *Factory[N] {
	if a == nil {
		panic(panicNilArithmetic)
	}

	return &Factory[N]{arith: a}
}

// Arithmetic returns the backend shared by every unit of this factory.
func (f *Factory[N]) Arithmetic() arithmetic.Arithmetic[N] {
	return f.arith
}

// MakeUnit creates a unit of dimension dim. Scale and offset default to
// DefaultScale and DefaultOffset and are converted with FromNative.
//
// Errors: ErrZeroScale, or the backend's conversion error.
func (f *Factory[N]) MakeUnit(symbol string, dim dimension.Vector, opts ...Option) (*Unit[N], error) {
	o := gatherOptions(opts...)

	scale, err := f.arith.FromNative(o.scale)
	if err != nil {
		return nil, fmt.Errorf("unit: %q scale %v: %w", symbol, o.scale, err)
	}
	offset, err := f.arith.FromNative(o.offset)
	if err != nil {
		return nil, fmt.Errorf("unit: %q offset %v: %w", symbol, o.offset, err)
	}

	return f.MakeUnitExact(symbol, dim, scale, offset)
}

// MakeUnitExact is MakeUnit with scale and offset given in the backend's own
// numeric type, so no float64 rounding is involved.
func (f *Factory[N]) MakeUnitExact(symbol string, dim dimension.Vector, scale, offset N) (*Unit[N], error) {
	if arithmetic.IsZero(f.arith, scale) {
		return nil, fmt.Errorf("unit: %q: %w", symbol, ErrZeroScale)
	}

	return &Unit[N]{
		symbol: symbol,
		dim:    dim,
		scale:  scale,
		offset: offset,
		arith:  f.arith,
	}, nil
}

// MakeQuantity returns amount measured in u.
func (f *Factory[N]) MakeQuantity(amount N, u *Unit[N]) (Quantity[N], error) {
	if u == nil {
		return Quantity[N]{}, ErrNilUnit
	}

	return u.Of(amount), nil
}

// Float is the float64 factory used by New and MustNew.
var Float = NewFactory[float64](arithmetic.Float64{})

// New creates a float64 unit through Float.
func New(symbol string, dim dimension.Vector, opts ...Option) (*Unit[float64], error) {
	return Float.MakeUnit(symbol, dim, opts...)
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(symbol string, dim dimension.Vector, opts ...Option) *Unit[float64] {
	return Must(New(symbol, dim, opts...))
}

// Must returns v or panics with err. It wraps fallible derivations in
// package-level variable declarations:
//
//	var kmh = unit.Must(km.Per(hours))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
