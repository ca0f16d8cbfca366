// SPDX-License-Identifier: MIT

// Command genexponent writes the exponent lookup tables used by package
// exponent for a chosen maximum exponent magnitude.
//
// Usage:
//
//	genexponent --max 4 --package exponent --output table_gen.go
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:          os.Stderr,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
