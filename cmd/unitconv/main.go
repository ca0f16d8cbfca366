// SPDX-License-Identifier: MIT

// Command unitconv converts quantities between the units of the SI catalog.
//
//	unitconv convert 100 °C °F
//	unitconv list --dimension speed
//	unitconv describe kn
//	unitconv derive kg times m
package main

import (
	"os"

	"github.com/katalvlaran/lvunits/cmd/unitconv/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
