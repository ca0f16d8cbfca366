// SPDX-License-Identifier: MIT

package cmd

import "errors"

var (
	// ErrInvalidAmount indicates an amount argument that is not a finite number.
	ErrInvalidAmount = errors.New("unitconv: invalid amount")

	// ErrUnknownOperator indicates a derive operator other than times or per.
	ErrUnknownOperator = errors.New("unitconv: operator must be times or per")

	// ErrLogFormat indicates an unsupported --log-format value.
	ErrLogFormat = errors.New("unitconv: log format must be json or plain")

	// ErrUnitsFile indicates a malformed entry in the units file.
	ErrUnitsFile = errors.New("unitconv: invalid units file entry")
)
