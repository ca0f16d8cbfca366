// SPDX-License-Identifier: MIT

package si

import "errors"

var (
	// ErrDuplicateSymbol indicates Register was given a symbol already in use.
	ErrDuplicateSymbol = errors.New("si: duplicate unit symbol")

	// ErrUnknownSymbol indicates Lookup found no unit with the given symbol.
	ErrUnknownSymbol = errors.New("si: unknown unit symbol")

	// ErrEmptySymbol indicates Register was given a unit without a symbol.
	ErrEmptySymbol = errors.New("si: empty unit symbol")

	// ErrUnknownDimension indicates a dimension name outside Dimensions.
	ErrUnknownDimension = errors.New("si: unknown dimension name")

	// ErrNilFactory indicates NewSystem was given a nil factory.
	ErrNilFactory = errors.New("si: nil unit factory")

	// ErrNoGeometry indicates trigonometry on a System built without a
	// Geometric backend.
	ErrNoGeometry = errors.New("si: system has no geometric backend")
)
