// SPDX-License-Identifier: MIT

package gonumunit

import "errors"

var (
	// ErrUnmappedDimension indicates a base dimension with no counterpart on
	// the other side.
	ErrUnmappedDimension = errors.New("gonumunit: unmapped dimension")

	// ErrDimensionMismatch indicates a gonum value whose dimensions differ from
	// the target unit.
	ErrDimensionMismatch = errors.New("gonumunit: dimension mismatch")
)
