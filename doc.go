// SPDX-License-Identifier: MIT

// Package lvunits is a dimensional-analysis toolkit: quantities that know
// their units, units that know their dimensions, and conversions that refuse
// to mix metres with seconds.
//
// 🚀 What is lvunits?
//
//	A small, generic library that brings together:
//		• Exponent algebra: bounded integer exponents with overflow checks
//		• Dimension vectors: immutable maps of base quantity to exponent
//		• Numeric backends: float64, math/big and fixed-point decimals
//		• Units: scale, datum offset, SI prefixes, products and quotients
//		• Quantities: conversion, comparison and unit-aware arithmetic
//		• An SI catalog with a symbol registry and angle trigonometry
//
// ✨ Why choose lvunits?
//
//   - Immutable values - every operation returns a new Unit or Quantity
//   - Explicit errors - sentinel errors matched with errors.Is, no panics
//     outside Must helpers and option constructors
//   - Generic numbers - the same Unit logic runs on float64, *big.Float or
//     cosmossdk.io/math.LegacyDec
//
// Packages:
//
//	exponent/    - bounded exponent arithmetic and generated lookup tables
//	dimension/   - dimension vectors, base and derived dimensions
//	arithmetic/  - Arithmetic and Geometric backends
//	unit/        - Unit, Quantity, Factory, SI prefixes, formatting
//	si/          - the SI catalog, symbol registry and trig helpers
//	gonumunit/   - interop with gonum.org/v1/gonum/unit
//	cmd/unitconv - command line converter over the catalog
//	cmd/genexponent - generator for exponent/table_gen.go
//
// Quick example:
//
//	speed, _ := si.Meters.Of(5).Per(si.Seconds.Of(2))
//	fmt.Println(speed)            // 2.5m/s
//	boil, _ := si.Celsius.Of(100).In(si.Fahrenheit)
//	fmt.Println(boil)             // 212°F
//
//	go get github.com/katalvlaran/lvunits
package lvunits
