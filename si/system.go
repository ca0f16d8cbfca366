// SPDX-License-Identifier: MIT

package si

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
)

// System is the unit catalog for one numeric backend plus a registry keyed by
// symbol. The exported unit fields are set by NewSystem and must not be
// reassigned.
type System[N any] struct {
	factory *unit.Factory[N]
	geo     arithmetic.Geometric[N]

	mu    sync.RWMutex
	units map[string]*unit.Unit[N]
	order []*unit.Unit[N]

	// Ratio.
	Scalar, Percent, Permille, Permyriad *unit.Unit[N]

	// Angle.
	Radians, Degrees, Turns, Steradians, SquareDegrees *unit.Unit[N]

	// Length.
	Meters, Kilometers, Centimeters, Millimeters, Micrometers, Nanometers *unit.Unit[N]
	Picometers, Femtometers, Angstroms                                    *unit.Unit[N]
	Yards, Feet, Inches, Chains, Furlongs, Miles, Fathoms                 *unit.Unit[N]
	NauticalMiles, AstronomicalUnits                                      *unit.Unit[N]

	// Area and volume.
	SquareMeters, CubicMeters *unit.Unit[N]

	// Time.
	Seconds, Milliseconds, Microseconds, Nanoseconds, Minutes, Hours *unit.Unit[N]

	// Mass.
	Kilograms, Grams, Pounds *unit.Unit[N]

	// Temperature.
	Kelvin, Celsius, Fahrenheit, Rankine *unit.Unit[N]

	// Speed.
	MetersPerSecond, KilometersPerHour, MilesPerHour, Knots, FeetPerSecond *unit.Unit[N]

	// Mechanics.
	Hertz, Newtons, Joules, Watts, Pascals *unit.Unit[N]

	// Electricity and magnetism.
	Amperes, Coulombs, Volts, Ohms, Siemens, Henries *unit.Unit[N]
	Farads, Microfarads, Nanofarads, Picofarads      *unit.Unit[N]
	Webers, Teslas                                   *unit.Unit[N]

	// Photometry.
	Candelas, Lumens, Lux *unit.Unit[N]

	// Radiation.
	Grays, Sieverts, Becquerels *unit.Unit[N]

	// Amount of substance.
	Moles *unit.Unit[N]
}

// NewSystem builds the catalog with f. A nil g disables the trigonometric
// helpers, which then return ErrNoGeometry.
//
// Errors: whatever the backend reports while deriving the catalog, e.g.
// unit.ErrZeroScale for prefixes a fixed-point backend cannot represent.
func NewSystem[N any](f *unit.Factory[N], g arithmetic.Geometric[N]) (*System[N], error) {
	if f == nil {
		return nil, ErrNilFactory
	}
	s := &System[N]{
		factory: f,
		geo:     g,
		units:   make(map[string]*unit.Unit[N]),
	}
	if err := s.build(); err != nil {
		return nil, fmt.Errorf("si: build catalog: %w", err)
	}

	return s, nil
}

// Factory returns the factory the catalog was built with.
func (s *System[N]) Factory() *unit.Factory[N] {
	return s.factory
}

// Register adds u under its symbol.
//
// Errors: unit.ErrNilUnit, ErrEmptySymbol, ErrDuplicateSymbol.
func (s *System[N]) Register(u *unit.Unit[N]) error {
	if u == nil {
		return unit.ErrNilUnit
	}
	if u.Symbol() == "" {
		return ErrEmptySymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[u.Symbol()]; ok {
		return fmt.Errorf("si: %q: %w", u.Symbol(), ErrDuplicateSymbol)
	}
	s.units[u.Symbol()] = u
	s.order = append(s.order, u)

	return nil
}

// Lookup returns the unit registered under symbol.
func (s *System[N]) Lookup(symbol string) (*unit.Unit[N], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.units[symbol]
	if !ok {
		return nil, fmt.Errorf("si: %q: %w", symbol, ErrUnknownSymbol)
	}

	return u, nil
}

// Symbols returns every registered symbol in ascending order.
func (s *System[N]) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.units))
	for sym := range s.units {
		out = append(out, sym)
	}
	slices.Sort(out)

	return out
}

// Units returns every registered unit in registration order.
func (s *System[N]) Units() []*unit.Unit[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}

// ByDimension returns the registered units of dimension d in registration
// order.
func (s *System[N]) ByDimension(d dimension.Vector) []*unit.Unit[N] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*unit.Unit[N]
	for _, u := range s.order {
		if u.Dimension().Equal(d) {
			out = append(out, u)
		}
	}

	return out
}
