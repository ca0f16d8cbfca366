// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvunits/si"
	"github.com/katalvlaran/lvunits/unit"
)

// UnitsFile declares units derived from already registered ones:
//
//	units:
//	  - symbol: Mm
//	    base: m
//	    prefix: M
//	  - symbol: kWh
//	    base: J
//	    scale: 3.6e6
//	  - symbol: °Ré
//	    base: K
//	    scale: 1.25
//	    offset: -218.52
//
// Entries are applied in order, so an entry may build on an earlier one.
// The scale multiplies the base unit's scale and the offset is expressed in
// the new unit.
type UnitsFile struct {
	Units []UnitDef `yaml:"units"`
}

// UnitDef is one entry of a UnitsFile.
type UnitDef struct {
	Symbol string   `yaml:"symbol"`
	Base   string   `yaml:"base"`
	Prefix string   `yaml:"prefix,omitempty"`
	Scale  *float64 `yaml:"scale,omitempty"`
	Offset float64  `yaml:"offset,omitempty"`
}

func loadUnitsFile(path string, sys *si.System[float64]) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	n, err := registerUnits(bytes.NewReader(data), sys)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// registerUnits decodes a UnitsFile from r and registers its units in sys.
// It returns how many were registered before the first failure.
func registerUnits(r io.Reader, sys *si.System[float64]) (int, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f UnitsFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	for i, def := range f.Units {
		u, err := def.build(sys)
		if err != nil {
			return i, fmt.Errorf("entry %d (%q): %w", i, def.Symbol, err)
		}
		if err = sys.Register(u); err != nil {
			return i, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return len(f.Units), nil
}

func (d UnitDef) build(sys *si.System[float64]) (*unit.Unit[float64], error) {
	if d.Symbol == "" {
		return nil, fmt.Errorf("missing symbol: %w", ErrUnitsFile)
	}
	if d.Base == "" {
		return nil, fmt.Errorf("missing base: %w", ErrUnitsFile)
	}

	u, err := sys.Lookup(d.Base)
	if err != nil {
		return nil, err
	}
	if d.Prefix != "" {
		p, err := unit.ParsePrefix(d.Prefix)
		if err != nil {
			return nil, err
		}
		if u, err = u.WithSiPrefix(p); err != nil {
			return nil, err
		}
	}
	if d.Scale != nil {
		if u, err = u.TimesScalar(*d.Scale); err != nil {
			return nil, err
		}
	}

	return u.WithOffset(d.Offset).WithSymbol(d.Symbol), nil
}
