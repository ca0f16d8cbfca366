// SPDX-License-Identifier: MIT

// Package si is a catalog of SI and common customary units built on package
// unit, together with an exact-symbol registry and angle trigonometry.
//
// A System is built once per numeric backend:
//
//	sys, err := si.NewSystem(unit.NewFactory[*big.Float](arithmetic.BigFloat{}), nil)
//
// Default is the float64 System, and the package-level variables (Meters,
// Celsius, Newtons, ...) are its units.
//
// Catalog:
//
//   - ratio:       "" (scalar), %, ‰, ‱
//   - angle:       rad, °, τ, sr, deg²
//   - length:      m with the k c m μ n p f prefixes, Å, yd, ft, in, ch, fur, mi, ftm, M, au
//   - area/volume: m², m³
//   - time:        s, ms, μs, ns, min, h
//   - mass:        kg, g, lb
//   - temperature: K, °C, °F, °R
//   - speed:       m/s, km/h, mph, kn, fps
//   - mechanics:   Hz, N, J, W, Pa
//   - electric:    A, C, V, Ω, S, F (μF, nF, pF), H
//   - magnetic:    Wb, T
//   - photometric: cd, lm, lx
//   - radiation:   Gy, Sv, Bq
//   - amount:      mol
//
// The registry resolves exact symbols only. It never parses expressions such
// as "km/h"; such units are registered under that literal symbol.
//
// Concurrency: a System is safe for concurrent use. Lookups take a read lock
// and Register takes a write lock.
package si
