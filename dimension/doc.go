// SPDX-License-Identifier: MIT

// Package dimension models physical dimensions as sparse vectors of base
// quantity exponents.
//
// What:
//
//   - A Vector maps a base-quantity key ("length", "time", "mass", ...) to a
//     non-zero exponent.Exponent. Zero exponents are never stored: combining
//     {length: 1} with {length: -1} yields the empty vector, not {length: 0}.
//   - The empty vector (and the zero Vector value) is the dimension of a
//     dimensionless quantity, exported as One.
//   - Vectors are immutable. Every combinator returns a fresh Vector.
//
// Combinators:
//
//   - Multiply / Times:   exponent-wise Add.
//   - Divide / Over:      exponent-wise Sub.
//   - Reciprocal:         exponent-wise Negate (never overflows).
//   - Squared / Cubed:    exponent-wise Double / Triple.
//
// Static checks become runtime checks in Go: CanMultiply and CanDivide report
// whether a combination stays within [-exponent.Max, exponent.Max], and
// Multiplicand / Divisor expose the admissible exponents per key.
//
// Errors:
//
//   - ErrOverflow:        a combination overflowed (alias of exponent.ErrOverflow).
//   - ErrInvalidExponent: New was given an exponent outside the legal range.
//   - ErrEmptyKey:        New was given an empty base-quantity key.
package dimension
