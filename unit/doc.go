// SPDX-License-Identifier: MIT

// Package unit provides dimensioned units of measure and the quantities
// measured in them.
//
// A Unit is an immutable value made of a symbol, a dimension.Vector, a scale
// relative to the base unit of its dimension and an optional datum offset.
// A Quantity pairs an amount with a Unit. Both are generic over the numeric
// type N and talk to numbers only through an arithmetic.Arithmetic[N].
//
// Conversion model:
//
//	canonical = (amount − offset) × scale
//	amount    = canonical / scale + offset
//
// The offset is expressed in the unit's own amounts, so Celsius is Kelvin
// with offset −273.15 and Fahrenheit is Kelvin scaled by 5/9 with offset
// −459.67. Quantity.In is the single conversion primitive; Plus, Minus,
// IsCloseTo and Compare all route through it.
//
// Deriving units:
//
//   - TimesScalar / PerScalar:  rescale by a constant (scale s×k, offset o/k).
//   - WithOffset:               shift the datum (offset o+Δ).
//   - WithSiPrefix:             TimesScalar(10^p) plus a prefixed symbol.
//   - Times / Per:              compound units, symbols "a⋅b" and "a/b".
//   - Reciprocal / Squared / Cubed: symbols "1/a", "a²" and "a³".
//
// Compound derivations are undefined for offset units (you cannot square
// degrees Celsius) and return ErrOffsetIncompatible.
//
// Dimension agreement:
//
//	Go has no literal types to check dimensions at compile time. In, Plus,
//	Minus, IsCloseTo and Compare check it at run time and return
//	ErrDimensionMismatch.
//
// Construction:
//
//	f := unit.NewFactory[float64](arithmetic.Float64{})
//	meters, _ := f.MakeUnit("m", dimension.Length)
//	km, _ := meters.WithSiPrefix(unit.Kilo)
//	q, _ := meters.Of(1500).In(km) // 1.5km
//
// The package-level Float factory and New/MustNew cover the float64 case.
//
// Errors:
//
//   - ErrOffsetIncompatible: Times, Per, Reciprocal, Squared or Cubed on a
//     unit (or quantity) with a non-zero offset.
//   - ErrOverflow:           a derived dimension left the exponent range.
//   - ErrZeroScale:          a zero scale or rescaling constant.
//   - ErrUnknownPrefix:      an SI prefix outside the standard set.
//   - ErrDimensionMismatch:  converting or comparing different dimensions.
//   - ErrNilUnit / ErrNilQuantity: nil unit argument or a zero Quantity.
//
// Division of amounts by zero is not an error: it follows the backend
// (±Inf for Float64, ErrDivisionByZero for BigFloat and Decimal).
//
// Concurrency: units and quantities are never mutated after construction and
// are safe to share between goroutines.
package unit
