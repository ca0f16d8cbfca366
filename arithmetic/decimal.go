// SPDX-License-Identifier: MIT

package arithmetic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Decimal is a fixed-point backend over cosmossdk.io/math LegacyDec
// (18 fractional digits, 256-bit integer part).
//
// Semantics that differ from Float64:
//   - FromNative rejects NaN and ±Inf with ErrNotFinite.
//   - Div by zero returns ErrDivisionByZero; there is no infinity to return.
//   - Pow supports integral exponents only.
//   - Magnitudes below 1e-18 round to zero on conversion.
//   - Mul panics when the result exceeds LegacyDec's bit length, as LegacyDec does.
type Decimal struct{}

var _ Arithmetic[sdkmath.LegacyDec] = Decimal{}

func (Decimal) FromNative(v float64) (sdkmath.LegacyDec, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sdkmath.LegacyDec{}, fmt.Errorf("decimal from %v: %w", v, ErrNotFinite)
	}

	// Shortest representation keeps 0.1 as 0.1; only fall back to rounding at
	// LegacyPrecision when the literal has more fractional digits than fit.
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > sdkmath.LegacyPrecision {
		s = strconv.FormatFloat(v, 'f', sdkmath.LegacyPrecision, 64)
	}

	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("decimal from %v: %w", v, err)
	}

	return d, nil
}

// ToNative parses the decimal string; values beyond float64 range become ±Inf.
func (Decimal) ToNative(x sdkmath.LegacyDec) float64 {
	f, _ := x.Float64()
	return f
}

func (Decimal) Add(x, y sdkmath.LegacyDec) sdkmath.LegacyDec { return x.Add(y) }
func (Decimal) Sub(x, y sdkmath.LegacyDec) sdkmath.LegacyDec { return x.Sub(y) }
func (Decimal) Mul(x, y sdkmath.LegacyDec) sdkmath.LegacyDec { return x.Mul(y) }
func (Decimal) Abs(x sdkmath.LegacyDec) sdkmath.LegacyDec { return x.Abs() }

func (Decimal) Div(x, y sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if y.IsZero() {
		return sdkmath.LegacyDec{}, fmt.Errorf("decimal %s / 0: %w", x, ErrDivisionByZero)
	}

	return x.Quo(y), nil
}

func (d Decimal) Pow(base, exponent sdkmath.LegacyDec) (sdkmath.LegacyDec, error) {
	if !exponent.Equal(exponent.TruncateDec()) {
		return sdkmath.LegacyDec{}, fmt.Errorf("decimal pow %s: %w", exponent, ErrNonIntegralExponent)
	}

	n := exponent.TruncateInt64()
	if n >= 0 {
		return base.Power(uint64(n)), nil
	}

	return d.Div(sdkmath.LegacyOneDec(), base.Power(uint64(-n)))
}

func (Decimal) Compare(x, y sdkmath.LegacyDec) int {
	switch {
	case x.LT(y):
		return -1
	case x.GT(y):
		return 1
	default:
		return 0
	}
}
