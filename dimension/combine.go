// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvunits/exponent"
)

// Multiply returns the dimension of a product: exponents are added key by key
// and keys whose sum is 0 are dropped.
//
// Errors: ErrOverflow (wrapped with the key) if any sum leaves the legal range.
// Keys are visited in ascending order, so the reported key is deterministic.
func Multiply(a, b Vector) (Vector, error) {
	return combine("multiply", a, b, exponent.Add)
}

// Divide returns the dimension of a quotient a/b.
func Divide(a, b Vector) (Vector, error) {
	return combine("divide", a, b, exponent.Sub)
}

// Times is the method form of Multiply.
func (v Vector) Times(o Vector) (Vector, error) {
	return Multiply(v, o)
}

// Over is the method form of Divide.
func (v Vector) Over(o Vector) (Vector, error) {
	return Divide(v, o)
}

// Reciprocal negates every exponent. It cannot overflow.
func (v Vector) Reciprocal() Vector {
	out := make(map[string]exponent.Exponent, len(v.exps))
	for k, e := range v.exps {
		out[k] = exponent.Negate(e)
	}

	return fromMap(out)
}

// Squared doubles every exponent.
func (v Vector) Squared() (Vector, error) {
	return v.scale("square", exponent.Double)
}

// Cubed triples every exponent.
func (v Vector) Cubed() (Vector, error) {
	return v.scale("cube", exponent.Triple)
}

// CanMultiply reports whether Multiply(a, b) would succeed.
func CanMultiply(a, b Vector) bool {
	return admissible(a, b, exponent.Addable)
}

// CanDivide reports whether Divide(a, b) would succeed.
func CanDivide(a, b Vector) bool {
	return admissible(a, b, exponent.Subtractable)
}

// Multiplicand returns, for every key of a, the exponents a multiplicand may
// carry on that key. Keys absent from a accept any legal exponent.
func Multiplicand(a Vector) map[string][]exponent.Exponent {
	return perKey(a, exponent.Addable)
}

// Divisor is the Divide counterpart of Multiplicand.
func Divisor(a Vector) map[string][]exponent.Exponent {
	return perKey(a, exponent.Subtractable)
}

func combine(op string, a, b Vector, f func(x, y exponent.Exponent) (exponent.Exponent, error)) (Vector, error) {
	out := make(map[string]exponent.Exponent, len(a.exps)+len(b.exps))
	for _, key := range unionKeys(a, b) {
		e, err := f(a.exps[key], b.exps[key])
		if err != nil {
			return Vector{}, fmt.Errorf("dimension: %s %s by %s at %q: %w", op, a, b, key, err)
		}
		if e != 0 {
			out[key] = e
		}
	}

	return fromMap(out), nil
}

func (v Vector) scale(op string, f func(exponent.Exponent) (exponent.Exponent, error)) (Vector, error) {
	out := make(map[string]exponent.Exponent, len(v.exps))
	for _, key := range v.Keys() {
		e, err := f(v.exps[key])
		if err != nil {
			return Vector{}, fmt.Errorf("dimension: %s %s at %q: %w", op, v, key, err)
		}
		out[key] = e
	}

	return fromMap(out), nil
}

func admissible(a, b Vector, table func(exponent.Exponent) []exponent.Exponent) bool {
	for key, e := range b.exps {
		if !slices.Contains(table(a.exps[key]), e) {
			return false
		}
	}

	return true
}

func perKey(a Vector, table func(exponent.Exponent) []exponent.Exponent) map[string][]exponent.Exponent {
	out := make(map[string][]exponent.Exponent, len(a.exps))
	for key, e := range a.exps {
		out[key] = table(e)
	}

	return out
}

func unionKeys(a, b Vector) []string {
	keys := a.Keys()
	for k := range b.exps {
		if _, ok := a.exps[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	return keys
}
