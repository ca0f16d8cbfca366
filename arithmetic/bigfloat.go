// SPDX-License-Identifier: MIT

package arithmetic

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultPrecision matches the IEEE 754 binary128 mantissa.
const DefaultPrecision uint = 113

// BigFloat is an arbitrary-precision backend over *big.Float.
// The zero value uses DefaultPrecision.
type BigFloat struct {
	// Prec is the mantissa precision in bits of every result.
	Prec uint
}

var _ Arithmetic[*big.Float] = BigFloat{}

// NewBigFloat returns a backend rounding results to prec bits.
func NewBigFloat(prec uint) BigFloat {
	return BigFloat{Prec: prec}
}

func (b BigFloat) precision() uint {
	if b.Prec == 0 {
		return DefaultPrecision
	}

	return b.Prec
}

func (b BigFloat) newFloat() *big.Float {
	return new(big.Float).SetPrec(b.precision())
}

// FromNative rejects NaN and ±Inf. Keeping every value finite means Add, Sub
// and Mul never reach the Inf−Inf and 0×Inf forms that big.Float panics on.
func (b BigFloat) FromNative(v float64) (*big.Float, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("big float from %v: %w", v, ErrNotFinite)
	}

	return b.newFloat().SetFloat64(v), nil
}

func (b BigFloat) ToNative(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}

func (b BigFloat) Add(x, y *big.Float) *big.Float { return b.newFloat().Add(x, y) }
func (b BigFloat) Sub(x, y *big.Float) *big.Float { return b.newFloat().Sub(x, y) }
func (b BigFloat) Mul(x, y *big.Float) *big.Float { return b.newFloat().Mul(x, y) }
func (b BigFloat) Abs(x *big.Float) *big.Float { return b.newFloat().Abs(x) }
func (b BigFloat) Compare(x, y *big.Float) int { return x.Cmp(y) }

// Div returns x/y. Division by zero returns ErrDivisionByZero.
func (b BigFloat) Div(x, y *big.Float) (*big.Float, error) {
	if y.Sign() == 0 {
		return nil, fmt.Errorf("big float %v / 0: %w", x, ErrDivisionByZero)
	}

	return b.newFloat().Quo(x, y), nil
}

// Pow supports integral exponents only, computed by binary exponentiation.
// A negative exponent returns the reciprocal of the positive power.
func (b BigFloat) Pow(base, exponent *big.Float) (*big.Float, error) {
	if !exponent.IsInt() {
		return nil, fmt.Errorf("big float pow %v: %w", exponent, ErrNonIntegralExponent)
	}
	n, acc := exponent.Int64()
	if acc != big.Exact {
		return nil, fmt.Errorf("big float pow %v: %w", exponent, ErrNonIntegralExponent)
	}

	neg := n < 0
	if neg {
		n = -n
	}

	result := b.newFloat().SetInt64(1)
	sq := b.newFloat().Set(base)
	for n > 0 {
		if n&1 == 1 {
			result = b.Mul(result, sq)
		}
		n >>= 1
		if n > 0 {
			sq = b.Mul(sq, sq)
		}
	}
	if neg {
		return b.Div(b.newFloat().SetInt64(1), result)
	}

	return result, nil
}
