// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
)

// Times returns the product unit u⋅other.
//
//	newtons := kilograms.Times(meters) // then .Per(seconds.Squared())
//
// Errors: ErrNilUnit, ErrOffsetIncompatible, ErrOverflow.
func (u *Unit[N]) Times(other *Unit[N]) (*Unit[N], error) {
	if err := checkPair("multiply", u, other); err != nil {
		return nil, err
	}
	dim, err := dimension.Multiply(u.dim, other.dim)
	if err != nil {
		return nil, fmt.Errorf("unit: %s⋅%s: %w", u.symbol, other.symbol, err)
	}

	return u.derive(u.symbol+"⋅"+other.symbol, dim, u.arith.Mul(u.scale, other.scale), u.offset), nil
}

// Per returns the quotient unit u/other.
//
// Errors: ErrNilUnit, ErrOffsetIncompatible, ErrOverflow.
func (u *Unit[N]) Per(other *Unit[N]) (*Unit[N], error) {
	if err := checkPair("divide", u, other); err != nil {
		return nil, err
	}
	dim, err := dimension.Divide(u.dim, other.dim)
	if err != nil {
		return nil, fmt.Errorf("unit: %s/%s: %w", u.symbol, other.symbol, err)
	}
	scale, err := u.arith.Div(u.scale, other.scale)
	if err != nil {
		return nil, fmt.Errorf("unit: %s/%s: %w", u.symbol, other.symbol, err)
	}

	return u.derive(u.symbol+"/"+other.symbol, dim, scale, u.offset), nil
}

// Reciprocal returns 1/u. It cannot overflow.
func (u *Unit[N]) Reciprocal() (*Unit[N], error) {
	if err := checkSingle("take the reciprocal of", u); err != nil {
		return nil, err
	}
	scale, err := u.arith.Div(u.one(), u.scale)
	if err != nil {
		return nil, fmt.Errorf("unit: 1/%s: %w", u.symbol, err)
	}

	return u.derive("1/"+u.symbol, u.dim.Reciprocal(), scale, u.offset), nil
}

// Squared returns u², scale s².
func (u *Unit[N]) Squared() (*Unit[N], error) {
	if err := checkSingle("square", u); err != nil {
		return nil, err
	}
	dim, err := u.dim.Squared()
	if err != nil {
		return nil, fmt.Errorf("unit: %s²: %w", u.symbol, err)
	}

	return u.derive(u.symbol+"²", dim, u.arith.Mul(u.scale, u.scale), u.offset), nil
}

// Cubed returns u³, scale s³.
func (u *Unit[N]) Cubed() (*Unit[N], error) {
	if err := checkSingle("cube", u); err != nil {
		return nil, err
	}
	dim, err := u.dim.Cubed()
	if err != nil {
		return nil, fmt.Errorf("unit: %s³: %w", u.symbol, err)
	}
	scale := u.arith.Mul(u.arith.Mul(u.scale, u.scale), u.scale)

	return u.derive(u.symbol+"³", dim, scale, u.offset), nil
}

func checkSingle[N any](op string, u *Unit[N]) error {
	if u == nil {
		return ErrNilUnit
	}
	if u.HasOffset() {
		return fmt.Errorf("unit: cannot %s %s (offset %v): %w",
			op, u.symbol, u.arith.ToNative(u.offset), ErrOffsetIncompatible)
	}

	return nil
}

func checkPair[N any](op string, u, other *Unit[N]) error {
	if u == nil || other == nil {
		return ErrNilUnit
	}
	if u.HasOffset() || other.HasOffset() {
		return fmt.Errorf("unit: cannot %s %s (offset %v) and %s (offset %v): %w",
			op, u.symbol, u.arith.ToNative(u.offset),
			other.symbol, other.arith.ToNative(other.offset), ErrOffsetIncompatible)
	}

	return nil
}
