// SPDX-License-Identifier: MIT

package exponent

import "fmt"

//go:generate go run ../cmd/genexponent --max 4 --package exponent --output table_gen.go

// Exponent is the power of a single base quantity inside a dimension vector.
// Legal values are [-Max, Max]; 0 means the base quantity is absent.
type Exponent int8

// Min is the smallest legal exponent.
const Min = -Max

// IsValid reports whether x is a legal exponent. 0 is legal and denotes absence.
func IsValid(x int) bool {
	return x >= Min && x <= Max
}

// Valid reports whether e lies in [-Max, Max].
func (e Exponent) Valid() bool {
	return IsValid(int(e))
}

// Add returns a+b.
//
// Errors:
//   - ErrOutOfRange if either operand is not a legal exponent.
//   - ErrOverflow if |a+b| > Max.
//
// A zero result means the base quantity cancels out.
func Add(a, b Exponent) (Exponent, error) {
	if err := checkOperands("add", a, b); err != nil {
		return 0, err
	}

	return bounded(fmt.Sprintf("%d + %d", a, b), int(a)+int(b))
}

// Sub returns a-b with the same rules as Add.
func Sub(a, b Exponent) (Exponent, error) {
	if err := checkOperands("sub", a, b); err != nil {
		return 0, err
	}

	return bounded(fmt.Sprintf("%d - %d", a, b), int(a)-int(b))
}

// Negate returns -a. The range is symmetric, so a legal operand always
// yields a legal result.
func Negate(a Exponent) Exponent {
	return -a
}

// Double returns 2a, or ErrOverflow when |2a| > Max.
func Double(a Exponent) (Exponent, error) {
	if err := checkOperands("double", a); err != nil {
		return 0, err
	}

	return bounded(fmt.Sprintf("2 × %d", a), 2*int(a))
}

// Triple returns 3a, or ErrOverflow when |3a| > Max.
func Triple(a Exponent) (Exponent, error) {
	if err := checkOperands("triple", a); err != nil {
		return 0, err
	}

	return bounded(fmt.Sprintf("3 × %d", a), 3*int(a))
}

// Addable returns the non-zero exponents b for which Add(a, b) succeeds.
// The result is a fresh slice in ascending order; nil for an illegal a.
func Addable(a Exponent) []Exponent {
	if !a.Valid() {
		return nil
	}

	return append([]Exponent(nil), addable[int(a)+Max]...)
}

// Subtractable returns the non-zero exponents b for which Sub(a, b) succeeds.
func Subtractable(a Exponent) []Exponent {
	if !a.Valid() {
		return nil
	}

	return append([]Exponent(nil), subtractable[int(a)+Max]...)
}

func checkOperands(op string, xs ...Exponent) error {
	for _, x := range xs {
		if !x.Valid() {
			return fmt.Errorf("%s %d: %w", op, x, ErrOutOfRange)
		}
	}

	return nil
}

func bounded(expr string, v int) (Exponent, error) {
	if !IsValid(v) {
		return 0, fmt.Errorf("%s = %d exceeds ±%d: %w", expr, v, Max, ErrOverflow)
	}

	return Exponent(v), nil
}
