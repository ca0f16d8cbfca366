package unit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUnit_Defaults checks scale 1, offset 0 and the stored attributes.
func TestMakeUnit_Defaults(t *testing.T) {
	m, err := unit.New("m", dimension.Length)
	require.NoError(t, err)

	assert.Equal(t, "m", m.Symbol())
	assert.Equal(t, "m", m.String())
	assert.True(t, m.Dimension().Equal(dimension.Length))
	assert.Equal(t, unit.DefaultScale, m.Scale())
	assert.Equal(t, unit.DefaultOffset, m.Offset())
	assert.False(t, m.HasOffset())
	assert.Equal(t, arithmetic.Float64{}, m.Arithmetic())
}

// TestMakeUnit_Options applies WithScale and WithOffset.
func TestMakeUnit_Options(t *testing.T) {
	c, err := unit.New("°C", dimension.Temperature, unit.WithOffset(-273.15))
	require.NoError(t, err)
	assert.Equal(t, -273.15, c.Offset())
	assert.True(t, c.HasOffset())

	ft, err := unit.New("ft", dimension.Length, unit.WithScale(0.3048), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.3048, ft.Scale())
}

// TestMakeUnit_Errors covers the fallible constructor paths.
func TestMakeUnit_Errors(t *testing.T) {
	_, err := unit.Float.MakeUnitExact("x", dimension.Length, 0, 0)
	assert.ErrorIs(t, err, unit.ErrZeroScale)

	dec := unit.NewFactory[sdkDec](arithmetic.Decimal{})
	_, err = dec.MakeUnit("m", dimension.Length, unit.WithScale(1e-30))
	assert.ErrorIs(t, err, unit.ErrZeroScale, "rounds to zero in fixed point")

	_, err = unit.Float.MakeQuantity(1, nil)
	assert.ErrorIs(t, err, unit.ErrNilUnit)
}

// TestOptions_PanicOnNonsense mirrors the option validation contract.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { unit.WithScale(0) })
	assert.Panics(t, func() { unit.WithScale(math.NaN()) })
	assert.Panics(t, func() { unit.WithScale(math.Inf(1)) })
	assert.Panics(t, func() { unit.WithOffset(math.Inf(-1)) })
	assert.NotPanics(t, func() { unit.WithOffset(-459.67) })
	assert.Panics(t, func() { unit.NewFactory[float64](nil) })
	assert.Panics(t, func() { unit.MustNew("x", dimension.Length, unit.WithScale(0)) })
}

// TestMust panics only on a non-nil error.
func TestMust(t *testing.T) {
	assert.Equal(t, 3, unit.Must(3, nil))
	assert.Panics(t, func() { unit.Must(0, unit.ErrZeroScale) })
}

// TestWithSymbol keeps everything but the symbol.
func TestWithSymbol(t *testing.T) {
	f := newFixtures(t)
	renamed := f.celsius.WithSymbol("degC")

	assert.Equal(t, "degC", renamed.Symbol())
	assert.Equal(t, f.celsius.Scale(), renamed.Scale())
	assert.Equal(t, f.celsius.Offset(), renamed.Offset())
	assert.True(t, renamed.Dimension().Equal(f.celsius.Dimension()))
	assert.Equal(t, "°C", f.celsius.Symbol(), "receiver is untouched")
}

// TestTimesScalar_Identity: U×1 keeps scale, offset and dimension.
func TestTimesScalar_Identity(t *testing.T) {
	f := newFixtures(t)
	for _, u := range []*unit.Unit[float64]{f.meters, f.kilometers, f.celsius, f.fahrenheit} {
		got, err := u.TimesScalar(1)
		require.NoError(t, err)
		assert.Equal(t, u.Scale(), got.Scale(), u.Symbol())
		assert.Equal(t, u.Offset(), got.Offset(), u.Symbol())
		assert.True(t, got.Dimension().Equal(u.Dimension()), u.Symbol())
	}
}

// TestTimesScalar_Offset keeps the datum in base-unit terms.
func TestTimesScalar_Offset(t *testing.T) {
	f := newFixtures(t)

	half, err := f.celsius.TimesScalar(2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, half.Scale(), 1e-12)
	assert.InDelta(t, -136.575, half.Offset(), 1e-12)

	// 0 K is the same point in both units.
	zero, err := f.kelvin.Of(0).In(half)
	require.NoError(t, err)
	back, err := zero.In(f.celsius)
	require.NoError(t, err)
	assert.InDelta(t, -273.15, back.Amount(), 1e-9)
}

// TestScalar_Zero rejects degenerate rescaling.
func TestScalar_Zero(t *testing.T) {
	f := newFixtures(t)

	_, err := f.meters.TimesScalar(0)
	assert.ErrorIs(t, err, unit.ErrZeroScale)

	_, err = f.meters.PerScalar(0)
	assert.ErrorIs(t, err, unit.ErrZeroScale)
}

// TestPerScalar inverts TimesScalar.
func TestPerScalar(t *testing.T) {
	f := newFixtures(t)
	inch, err := f.feet.PerScalar(12)
	require.NoError(t, err)
	assert.InDelta(t, 0.0254, inch.Scale(), 1e-15)
	assert.InDelta(t, 5.0/9, f.rankine.Scale(), 1e-15)
}

// TestWithOffset checks the auto-generated symbol and the zero shortcut.
func TestWithOffset(t *testing.T) {
	f := newFixtures(t)

	c := f.kelvin.WithOffset(-273.15)
	assert.Equal(t, "K - 273.15", c.Symbol())
	assert.Equal(t, -273.15, c.Offset())

	up := f.kelvin.WithOffset(1000)
	assert.Equal(t, "K + 1,000", up.Symbol())

	assert.Same(t, f.kelvin, f.kelvin.WithOffset(0))
}

// TestWithOffset_Composes derives Fahrenheit from Celsius and lands on the
// same datum as the Kelvin-based definition.
func TestWithOffset_Composes(t *testing.T) {
	f := newFixtures(t)

	scaled, err := f.celsius.TimesScalar(5.0 / 9)
	require.NoError(t, err)
	fahr := scaled.WithOffset(32)

	assert.InDelta(t, f.fahrenheit.Scale(), fahr.Scale(), 1e-15)
	assert.InDelta(t, -459.67, fahr.Offset(), 1e-9)
}

// TestOfNative converts through the backend.
func TestOfNative(t *testing.T) {
	dec := unit.NewFactory[sdkDec](arithmetic.Decimal{})
	m, err := dec.MakeUnit("m", dimension.Length)
	require.NoError(t, err)

	q, err := m.OfNative(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.500000000000000000", q.Amount().String())

	_, err = m.OfNative(math.NaN())
	assert.ErrorIs(t, err, arithmetic.ErrNotFinite)
}

// TestFactory_MakeQuantity binds an amount to a unit.
func TestFactory_MakeQuantity(t *testing.T) {
	f := newFixtures(t)
	q, err := unit.Float.MakeQuantity(4, f.seconds)
	require.NoError(t, err)
	assert.Equal(t, 4.0, q.Amount())
	assert.Same(t, f.seconds, q.Unit())
	assert.Equal(t, arithmetic.Float64{}, unit.Float.Arithmetic())
}
