// SPDX-License-Identifier: MIT

package arithmetic

// Arithmetic is the capability set the unit core needs from a numeric type.
type Arithmetic[N any] interface {
	// FromNative converts a float64 into N.
	FromNative(v float64) (N, error)
	// ToNative converts N into the closest float64.
	ToNative(x N) float64

	Add(x, y N) N
	Sub(x, y N) N
	Mul(x, y N) N
	// Div returns x/y. Division by zero follows the backend's own rules.
	Div(x, y N) (N, error)
	// Pow returns base raised to exponent.
	Pow(base, exponent N) (N, error)
	Abs(x N) N

	// Compare returns -1 if x < y, 0 if x == y and +1 if x > y.
	Compare(x, y N) int
}

// Geometric provides trigonometry over N. Angles are in radians.
type Geometric[N any] interface {
	Sin(x N) N
	Cos(x N) N
	Tan(x N) N
	Asin(x N) N
	Acos(x N) N
	Atan(x N) N
	Atan2(y, x N) N
}

// IsZero reports whether x compares equal to zero under a.
func IsZero[N any](a Arithmetic[N], x N) bool {
	zero, err := a.FromNative(0)
	if err != nil {
		return false
	}

	return a.Compare(x, zero) == 0
}
