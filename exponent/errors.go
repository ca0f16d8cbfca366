// SPDX-License-Identifier: MIT

package exponent

import "errors"

var (
	// ErrOverflow indicates that an exponent combination left [-Max, Max].
	// Dimension combinators wrap it with the offending key.
	ErrOverflow = errors.New("exponent: overflow")

	// ErrOutOfRange indicates that an operand was not a legal exponent.
	ErrOutOfRange = errors.New("exponent: operand out of range")
)
