package unit_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/stretchr/testify/require"
)

type sdkDec = sdkmath.LegacyDec

// fixtures is a small float64 catalog shared by the tests of this package.
type fixtures struct {
	scalar, percent                      *unit.Unit[float64]
	meters, centimeters, kilometers      *unit.Unit[float64]
	feet                                 *unit.Unit[float64]
	seconds, hours                       *unit.Unit[float64]
	kilograms, amperes                   *unit.Unit[float64]
	kelvin, celsius, fahrenheit, rankine *unit.Unit[float64]
}

func newFixtures(t testing.TB) fixtures {
	t.Helper()

	must := func(u *unit.Unit[float64], err error) *unit.Unit[float64] {
		t.Helper()
		require.NoError(t, err)
		return u
	}

	var f fixtures
	f.scalar = unit.MustNew("", dimension.One)
	f.percent = must(f.scalar.TimesScalar(1e-2)).WithSymbol("%")

	f.meters = unit.MustNew("m", dimension.Length)
	f.centimeters = must(f.meters.WithSiPrefix(unit.Centi))
	f.kilometers = must(f.meters.WithSiPrefix(unit.Kilo))
	f.feet = must(f.meters.TimesScalar(0.3048)).WithSymbol("ft")

	f.seconds = unit.MustNew("s", dimension.Time)
	f.hours = must(f.seconds.TimesScalar(3600)).WithSymbol("h")
	f.kilograms = unit.MustNew("kg", dimension.Mass)
	f.amperes = unit.MustNew("A", dimension.Current)

	f.kelvin = unit.MustNew("K", dimension.Temperature)
	f.celsius = f.kelvin.WithOffset(-273.15).WithSymbol("°C")
	f.fahrenheit = must(f.kelvin.TimesScalar(5.0 / 9)).WithOffset(-459.67).WithSymbol("°F")
	f.rankine = must(f.kelvin.PerScalar(1.8)).WithSymbol("°R")

	return f
}
