// SPDX-License-Identifier: MIT

package arithmetic

import (
	"cmp"
	"math"
)

// Float64 is the default backend over built-in float64 values.
type Float64 struct{}

var (
	_ Arithmetic[float64] = Float64{}
	_ Geometric[float64]  = Float64{}
)

func (Float64) FromNative(v float64) (float64, error) { return v, nil }
func (Float64) ToNative(x float64) float64 { return x }
func (Float64) Add(x, y float64) float64 { return x + y }
func (Float64) Sub(x, y float64) float64 { return x - y }
func (Float64) Mul(x, y float64) float64 { return x * y }
func (Float64) Abs(x float64) float64 { return math.Abs(x) }

// Div never fails: x/0 is ±Inf and 0/0 is NaN.
func (Float64) Div(x, y float64) (float64, error) { return x / y, nil }

func (Float64) Pow(base, exponent float64) (float64, error) {
	return math.Pow(base, exponent), nil
}

// Compare uses cmp.Compare, which orders NaN before every other value.
func (Float64) Compare(x, y float64) int { return cmp.Compare(x, y) }

func (Float64) Sin(x float64) float64 { return math.Sin(x) }
func (Float64) Cos(x float64) float64 { return math.Cos(x) }
func (Float64) Tan(x float64) float64 { return math.Tan(x) }
func (Float64) Asin(x float64) float64 { return math.Asin(x) }
func (Float64) Acos(x float64) float64 { return math.Acos(x) }
func (Float64) Atan(x float64) float64 { return math.Atan(x) }
func (Float64) Atan2(y, x float64) float64 { return math.Atan2(y, x) }
