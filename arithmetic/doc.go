// SPDX-License-Identifier: MIT

// Package arithmetic abstracts the numeric type used for unit scales, datum
// offsets and quantity amounts.
//
// The unit package is generic over N and only ever talks to numbers through an
// Arithmetic[N]. This package performs no dimensional reasoning.
//
// Backends:
//
//   - Float64:  native IEEE-754 doubles. Never fails; x/0 yields ±Inf and 0/0
//     yields NaN, exactly as Go does. Also implements Geometric[float64].
//   - BigFloat: *big.Float at a fixed precision (113 bits by default, the
//     binary128 mantissa). Values stay finite: FromNative rejects NaN and
//     ±Inf with ErrNotFinite and x/0 returns ErrDivisionByZero.
//   - Decimal:  cosmossdk.io/math LegacyDec, 18 fractional digits. Fixed-point
//     has no infinity, so x/0 returns ErrDivisionByZero. Values smaller than
//     1e-18 (the z and y SI prefixes) round to zero.
//
// Contract:
//
//   - No backend rounds beyond what its numeric type does.
//   - Compare(x, y) returns -1, 0 or +1 and is consistent with Sub and Abs.
//   - Inputs are never mutated; every operation returns a fresh value.
package arithmetic
