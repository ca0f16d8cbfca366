// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
)

// Quantity is an amount measured in a Unit, e.g. 43m, 32°C or 3.5m/s.
// The zero Quantity has no unit: fallible methods return ErrNilQuantity on it
// and the infallible ones (Value, TimesScalar, PlusAmount, MinusAmount) panic.
type Quantity[N any] struct {
	amount N
	unit   *Unit[N]
}

// Amount returns the amount in q's own unit.
func (q Quantity[N]) Amount() N { return q.amount }

// Unit returns the unit q is measured in.
func (q Quantity[N]) Unit() *Unit[N] { return q.unit }

// Dimension returns the dimension of q's unit.
func (q Quantity[N]) Dimension() dimension.Vector {
	if q.unit == nil {
		return dimension.One
	}

	return q.unit.dim
}

// IsDimensionless reports whether q has the empty dimension.
func (q Quantity[N]) IsDimensionless() bool {
	return q.Dimension().IsDimensionless()
}

// Value returns the canonical amount in the base unit of q's dimension:
// (amount − offset) × scale. Two quantities of one dimension order by Value.
func (q Quantity[N]) Value() N {
	u := q.unit
	return u.arith.Mul(u.arith.Sub(q.amount, u.offset), u.scale)
}

// In converts q into u. Converting into q's own unit returns q unchanged.
//
//	meters.Of(1).In(centimeters) // 100cm
//
// Errors: ErrNilQuantity, ErrNilUnit, ErrDimensionMismatch.
func (q Quantity[N]) In(u *Unit[N]) (Quantity[N], error) {
	if q.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	if u == nil {
		return Quantity[N]{}, ErrNilUnit
	}
	if u == q.unit {
		return q, nil
	}
	if !q.unit.dim.Equal(u.dim) {
		return Quantity[N]{}, fmt.Errorf("unit: %s in %s: %s vs %s: %w",
			q, u.symbol, q.unit.dim, u.dim, ErrDimensionMismatch)
	}

	a, err := u.arith.Div(q.Value(), u.scale)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: %s in %s: %w", q, u.symbol, err)
	}

	return Quantity[N]{amount: u.arith.Add(a, u.offset), unit: u}, nil
}

// IsCloseTo reports whether |q − other| ≤ eps, measured in other's unit.
func (q Quantity[N]) IsCloseTo(other Quantity[N], eps N) (bool, error) {
	if other.unit == nil {
		return false, ErrNilQuantity
	}
	conv, err := q.In(other.unit)
	if err != nil {
		return false, err
	}
	a := other.unit.arith
	diff := a.Abs(a.Sub(conv.amount, other.amount))

	return a.Compare(diff, eps) <= 0, nil
}

// Compare orders q and other by canonical value: -1, 0 or +1.
func (q Quantity[N]) Compare(other Quantity[N]) (int, error) {
	if err := q.sameDimension(other); err != nil {
		return 0, err
	}

	return q.unit.arith.Compare(q.Value(), other.Value()), nil
}

// Plus converts q into other's unit and adds other. The result is in
// other's unit: meters.Of(3).Plus(centimeters.Of(2)) is 302cm.
func (q Quantity[N]) Plus(other Quantity[N]) (Quantity[N], error) {
	return q.combine(other, false)
}

// Minus converts q into other's unit and subtracts other. The result is in
// other's unit: meters.Of(3).Minus(centimeters.Of(2)) is 298cm.
func (q Quantity[N]) Minus(other Quantity[N]) (Quantity[N], error) {
	return q.combine(other, true)
}

// PlusAmount adds x to the amount, keeping the unit.
func (q Quantity[N]) PlusAmount(x N) Quantity[N] {
	return q.unit.Of(q.unit.arith.Add(q.amount, x))
}

// MinusAmount subtracts x from the amount, keeping the unit.
func (q Quantity[N]) MinusAmount(x N) Quantity[N] {
	return q.unit.Of(q.unit.arith.Sub(q.amount, x))
}

// TimesScalar multiplies the amount by k, keeping the unit.
func (q Quantity[N]) TimesScalar(k N) Quantity[N] {
	return q.unit.Of(q.unit.arith.Mul(q.amount, k))
}

// PerScalar divides the amount by k, keeping the unit. Division by zero
// follows the backend.
func (q Quantity[N]) PerScalar(k N) (Quantity[N], error) {
	if q.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	a, err := q.unit.arith.Div(q.amount, k)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: %s per scalar: %w", q, err)
	}

	return q.unit.Of(a), nil
}

// Times multiplies two quantities.
//
// A dimensionless operand without an offset has its scale folded into the
// amount and the other operand's unit is kept, so percent.Of(50).Times(meters.Of(10))
// is 5m rather than 500m⋅%, and percent.Of(50).Times(celsius.Of(10)) is 5°C.
// Otherwise the result is in q.Unit().Times(other.Unit()).
//
// Errors: ErrNilQuantity, ErrOffsetIncompatible, ErrOverflow.
func (q Quantity[N]) Times(other Quantity[N]) (Quantity[N], error) {
	if q.unit == nil || other.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	a := q.unit.arith

	switch {
	case q.isRatio():
		return other.unit.Of(a.Mul(a.Mul(q.amount, q.unit.scale), other.amount)), nil
	case other.isRatio():
		return q.unit.Of(a.Mul(a.Mul(q.amount, other.amount), other.unit.scale)), nil
	}

	u, err := q.unit.Times(other.unit)
	if err != nil {
		return Quantity[N]{}, err
	}

	return u.Of(a.Mul(q.amount, other.amount)), nil
}

// Per divides q by other.
//
// A dimensionless divisor without an offset has its scale folded into the
// amount and q's unit is kept, offset included. A dimensionless dividend
// folds its own scale and takes the reciprocal of other's unit. Otherwise the
// result is in q.Unit().Per(other.Unit()). Division by a zero amount follows
// the backend: seconds.Of(0) as a divisor gives +Inf with Float64.
//
// Errors: ErrNilQuantity, ErrOffsetIncompatible, ErrOverflow.
func (q Quantity[N]) Per(other Quantity[N]) (Quantity[N], error) {
	if q.unit == nil || other.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	a := q.unit.arith

	var (
		num = q.amount
		den = other.amount
		u   *Unit[N]
		err error
	)
	switch {
	case other.isRatio():
		den = a.Mul(den, other.unit.scale)
		u = q.unit
	case q.isRatio():
		num = a.Mul(num, q.unit.scale)
		u, err = other.unit.Reciprocal()
	default:
		u, err = q.unit.Per(other.unit)
	}
	if err != nil {
		return Quantity[N]{}, err
	}

	amount, err := a.Div(num, den)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: %s per %s: %w", q, other, err)
	}

	return u.Of(amount), nil
}

// Reciprocal returns 1/q.
func (q Quantity[N]) Reciprocal() (Quantity[N], error) {
	if q.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	u, err := q.unit.Reciprocal()
	if err != nil {
		return Quantity[N]{}, err
	}
	amount, err := q.unit.arith.Div(q.unit.one(), q.amount)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: 1/%s: %w", q, err)
	}

	return u.Of(amount), nil
}

// Squared returns q².
func (q Quantity[N]) Squared() (Quantity[N], error) {
	return q.power(2, (*Unit[N]).Squared)
}

// Cubed returns q³.
func (q Quantity[N]) Cubed() (Quantity[N], error) {
	return q.power(3, (*Unit[N]).Cubed)
}

func (q Quantity[N]) power(n float64, derive func(*Unit[N]) (*Unit[N], error)) (Quantity[N], error) {
	if q.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	u, err := derive(q.unit)
	if err != nil {
		return Quantity[N]{}, err
	}
	a := q.unit.arith
	exp, err := a.FromNative(n)
	if err != nil {
		return Quantity[N]{}, err
	}
	amount, err := a.Pow(q.amount, exp)
	if err != nil {
		return Quantity[N]{}, fmt.Errorf("unit: %s^%v: %w", q, n, err)
	}

	return u.Of(amount), nil
}

func (q Quantity[N]) combine(other Quantity[N], subtract bool) (Quantity[N], error) {
	if other.unit == nil {
		return Quantity[N]{}, ErrNilQuantity
	}
	conv, err := q.In(other.unit)
	if err != nil {
		return Quantity[N]{}, err
	}

	a := other.unit.arith
	if subtract {
		return other.unit.Of(a.Sub(conv.amount, other.amount)), nil
	}

	return other.unit.Of(a.Add(conv.amount, other.amount)), nil
}

// isRatio reports whether q can be folded into the other operand of Times or
// Per as a plain factor.
func (q Quantity[N]) isRatio() bool {
	return q.IsDimensionless() && !q.unit.HasOffset()
}

func (q Quantity[N]) sameDimension(other Quantity[N]) error {
	if q.unit == nil || other.unit == nil {
		return ErrNilQuantity
	}
	if !q.unit.dim.Equal(other.unit.dim) {
		return fmt.Errorf("unit: %s vs %s: %w", q, other, ErrDimensionMismatch)
	}

	return nil
}

var _ fmt.Stringer = Quantity[float64]{}
