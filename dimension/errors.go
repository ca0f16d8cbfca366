// SPDX-License-Identifier: MIT

package dimension

import (
	"errors"

	"github.com/katalvlaran/lvunits/exponent"
)

var (
	// ErrOverflow is returned by combinators when an exponent leaves its range.
	// It is the same sentinel as exponent.ErrOverflow so errors.Is matches both.
	ErrOverflow = exponent.ErrOverflow

	// ErrInvalidExponent indicates an out-of-range exponent passed to New.
	ErrInvalidExponent = errors.New("dimension: invalid exponent")

	// ErrEmptyKey indicates an empty base-quantity key passed to New.
	ErrEmptyKey = errors.New("dimension: empty base quantity key")
)

const panicEmptyBaseKey = "dimension: Base: key must be non-empty"
