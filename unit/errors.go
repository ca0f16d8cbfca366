// SPDX-License-Identifier: MIT

package unit

import (
	"errors"

	"github.com/katalvlaran/lvunits/exponent"
)

var (
	// ErrOffsetIncompatible is returned when multiplying, dividing, inverting,
	// squaring or cubing a unit that carries a datum offset.
	ErrOffsetIncompatible = errors.New("unit: operation undefined for units with an offset")

	// ErrOverflow is the exponent overflow sentinel, re-exported so callers of
	// this package need not import exponent or dimension.
	ErrOverflow = exponent.ErrOverflow

	// ErrZeroScale indicates a zero scale or a zero rescaling constant.
	ErrZeroScale = errors.New("unit: scale must be non-zero")

	// ErrUnknownPrefix indicates a string that is not a standard SI prefix.
	ErrUnknownPrefix = errors.New("unit: unknown SI prefix")

	// ErrDimensionMismatch indicates two operands of different dimensions where
	// equal dimensions are required.
	ErrDimensionMismatch = errors.New("unit: dimension mismatch")

	// ErrNilUnit indicates a nil *Unit receiver or argument.
	ErrNilUnit = errors.New("unit: nil unit")

	// ErrNilQuantity indicates a zero Quantity value (one without a unit).
	ErrNilQuantity = errors.New("unit: quantity has no unit")
)

const (
	panicNilArithmetic = "unit: NewFactory: arithmetic must be non-nil"
	panicScaleInvalid  = "unit: WithScale: scale must be finite and non-zero"
	panicOffsetInvalid = "unit: WithOffset: offset must be finite"
)
