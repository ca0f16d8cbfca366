// SPDX-License-Identifier: MIT

// Package exponent implements the bounded integer algebra behind dimension
// vectors.
//
// What:
//
//   - An Exponent is a small signed integer restricted to [-Max, Max].
//   - The value 0 is never stored in a dimension vector; a missing key means 0.
//     Operations that cancel out return 0, which callers treat as "absent".
//   - Add, Sub, Double and Triple report ErrOverflow when the exact integer
//     result leaves the range. Negate never overflows because the range is
//     symmetric.
//
// Tables:
//
//	Max and the Addable/Subtractable lookup tables live in table_gen.go and are
//	produced by cmd/genexponent. Regenerate with a different bound via
//
//	  go generate ./exponent
//
// Errors:
//
//   - ErrOutOfRange: an operand is outside [-Max, Max].
//   - ErrOverflow:   the result of a combination is outside [-Max, Max].
package exponent
