// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/lvunits/exponent"
)

// Vector is an immutable mapping from base-quantity key to non-zero exponent.
// The zero value is the dimensionless vector.
type Vector struct {
	exps map[string]exponent.Exponent
}

// New builds a Vector from plain integers.
//
// Zero entries are dropped. Returns ErrEmptyKey for an empty key and
// ErrInvalidExponent for a value outside [-exponent.Max, exponent.Max].
func New(entries map[string]int) (Vector, error) {
	out := make(map[string]exponent.Exponent, len(entries))
	for key, val := range entries {
		if key == "" {
			return Vector{}, ErrEmptyKey
		}
		if !exponent.IsValid(val) {
			return Vector{}, fmt.Errorf("%q: %d: %w", key, val, ErrInvalidExponent)
		}
		if val != 0 {
			out[key] = exponent.Exponent(val)
		}
	}

	return fromMap(out), nil
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(entries map[string]int) Vector {
	v, err := New(entries)
	if err != nil {
		panic(err)
	}

	return v
}

// Base returns the vector {key: 1}. It panics on an empty key.
func Base(key string) Vector {
	if key == "" {
		panic(panicEmptyBaseKey)
	}

	return Vector{exps: map[string]exponent.Exponent{key: 1}}
}

func fromMap(m map[string]exponent.Exponent) Vector {
	if len(m) == 0 {
		return Vector{}
	}

	return Vector{exps: m}
}

// Get returns the exponent of key, or 0 when the key is absent.
func (v Vector) Get(key string) exponent.Exponent {
	return v.exps[key]
}

// Len returns the number of base quantities with a non-zero exponent.
func (v Vector) Len() int {
	return len(v.exps)
}

// IsDimensionless reports whether v is the empty vector.
func (v Vector) IsDimensionless() bool {
	return len(v.exps) == 0
}

// Keys returns the base-quantity keys in ascending order.
func (v Vector) Keys() []string {
	return slices.Sorted(maps.Keys(v.exps))
}

// Map returns a copy of the entries as plain integers.
func (v Vector) Map() map[string]int {
	out := make(map[string]int, len(v.exps))
	for k, e := range v.exps {
		out[k] = int(e)
	}

	return out
}

// Equal reports whether v and o have identical non-zero entries.
func (v Vector) Equal(o Vector) bool {
	if len(v.exps) != len(o.exps) {
		return false
	}
	for k, e := range v.exps {
		if oe, ok := o.exps[k]; !ok || oe != e {
			return false
		}
	}

	return true
}

// String renders v as "{length: 1, time: -1}" with keys in ascending order.
// The dimensionless vector renders as "{}".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", k, v.exps[k])
	}
	sb.WriteByte('}')

	return sb.String()
}
