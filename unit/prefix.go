// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"slices"
)

// Prefix is a standard SI prefix such as "k" (kilo) or "μ" (micro).
type Prefix string

// SI prefixes, largest first.
const (
	Yotta Prefix = "Y"
	Zetta Prefix = "Z"
	Exa   Prefix = "E"
	Peta  Prefix = "P"
	Tera  Prefix = "T"
	Giga  Prefix = "G"
	Mega  Prefix = "M"
	Kilo  Prefix = "k"
	Hecto Prefix = "h"
	Deca  Prefix = "da"
	Deci  Prefix = "d"
	Centi Prefix = "c"
	Milli Prefix = "m"
	Micro Prefix = "μ" // U+03BC GREEK SMALL LETTER MU
	Nano  Prefix = "n"
	Pico  Prefix = "p"
	Femto Prefix = "f"
	Atto  Prefix = "a"
	Zepto Prefix = "z"
	Yocto Prefix = "y"
)

var prefixOrder = []Prefix{
	Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo, Hecto, Deca,
	Deci, Centi, Milli, Micro, Nano, Pico, Femto, Atto, Zepto, Yocto,
}

var prefixPowers = map[Prefix]int{
	Yotta: 24, Zetta: 21, Exa: 18, Peta: 15, Tera: 12, Giga: 9, Mega: 6,
	Kilo: 3, Hecto: 2, Deca: 1, Deci: -1, Centi: -2, Milli: -3, Micro: -6,
	Nano: -9, Pico: -12, Femto: -15, Atto: -18, Zepto: -21, Yocto: -24,
}

// Prefixes returns every SI prefix, largest first.
func Prefixes() []Prefix {
	return slices.Clone(prefixOrder)
}

// ParsePrefix accepts every Prefix plus the ASCII "u" and the micro sign
// U+00B5 as spellings of Micro.
func ParsePrefix(s string) (Prefix, error) {
	switch s {
	case "u", "µ":
		return Micro, nil
	}
	if p := Prefix(s); p.Valid() {
		return p, nil
	}

	return "", fmt.Errorf("unit: %q: %w", s, ErrUnknownPrefix)
}

// Valid reports whether p is a standard SI prefix.
func (p Prefix) Valid() bool {
	_, ok := prefixPowers[p]
	return ok
}

// Power returns the power of ten of p (3 for kilo), or 0 for an invalid p.
func (p Prefix) Power() int {
	return prefixPowers[p]
}

// WithSiPrefix returns u scaled by 10^p.Power() with symbol p+u.Symbol().
// The magnitude is computed by the backend's Pow, so high-precision backends
// get exact powers of ten.
//
//	km, _ := meters.WithSiPrefix(unit.Kilo) // "km", scale 1000
//
// Errors: ErrUnknownPrefix, ErrZeroScale when the backend cannot represent
// the magnitude (Decimal below 1e-18).
func (u *Unit[N]) WithSiPrefix(p Prefix) (*Unit[N], error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unit: %s with prefix %q: %w", u.symbol, string(p), ErrUnknownPrefix)
	}
	mag, err := u.magnitude(p.Power())
	if err != nil {
		return nil, fmt.Errorf("unit: %s with prefix %q: %w", u.symbol, string(p), err)
	}
	scaled, err := u.TimesScalar(mag)
	if err != nil {
		return nil, err
	}

	return scaled.WithSymbol(string(p) + u.symbol), nil
}

func (u *Unit[N]) magnitude(power int) (N, error) {
	var zero N
	ten, err := u.arith.FromNative(10)
	if err != nil {
		return zero, err
	}
	exp, err := u.arith.FromNative(float64(power))
	if err != nil {
		return zero, err
	}

	return u.arith.Pow(ten, exp)
}

// MakeSiPrefixes derives u with each of ps, or with every prefix when ps is
// empty. It stops at the first error.
func MakeSiPrefixes[N any](u *Unit[N], ps ...Prefix) (map[Prefix]*Unit[N], error) {
	if u == nil {
		return nil, ErrNilUnit
	}
	if len(ps) == 0 {
		ps = prefixOrder
	}

	out := make(map[Prefix]*Unit[N], len(ps))
	for _, p := range ps {
		pu, err := u.WithSiPrefix(p)
		if err != nil {
			return nil, err
		}
		out[p] = pu
	}

	return out, nil
}
