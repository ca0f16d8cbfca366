// SPDX-License-Identifier: MIT

package arithmetic

import "errors"

var (
	// ErrNotFinite indicates a NaN or ±Inf input the backend cannot represent.
	ErrNotFinite = errors.New("arithmetic: value not representable")

	// ErrDivisionByZero is returned by backends that keep every value finite.
	ErrDivisionByZero = errors.New("arithmetic: division by zero")

	// ErrNonIntegralExponent is returned by Pow on backends that only support
	// integer powers.
	ErrNonIntegralExponent = errors.New("arithmetic: exponent must be integral")
)
