package unit_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvunits/arithmetic"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

// TestIn_Scenarios covers the documented conversion seeds.
func TestIn_Scenarios(t *testing.T) {
	f := newFixtures(t)

	cm, err := f.meters.Of(1).In(f.centimeters)
	require.NoError(t, err)
	assert.InDelta(t, 100, cm.Amount(), tol)
	assert.Same(t, f.centimeters, cm.Unit())

	k, err := f.celsius.Of(0).In(f.kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, k.Amount(), tol)

	fahr, err := f.celsius.Of(100).In(f.fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, 212, fahr.Amount(), tol)

	freezing, err := f.fahrenheit.Of(32).In(f.celsius)
	require.NoError(t, err)
	assert.InDelta(t, 0, freezing.Amount(), tol)

	r, err := f.kelvin.Of(100).In(f.rankine)
	require.NoError(t, err)
	assert.InDelta(t, 180, r.Amount(), tol)
}

// TestIn_SameUnit returns the receiver untouched.
func TestIn_SameUnit(t *testing.T) {
	f := newFixtures(t)
	q := f.fahrenheit.Of(451)

	got, err := q.In(f.fahrenheit)
	require.NoError(t, err)
	assert.Equal(t, q, got)
}

// TestIn_Errors covers dimension mismatch and missing units.
func TestIn_Errors(t *testing.T) {
	f := newFixtures(t)

	_, err := f.meters.Of(1).In(f.seconds)
	assert.ErrorIs(t, err, unit.ErrDimensionMismatch)

	_, err = f.meters.Of(1).In(nil)
	assert.ErrorIs(t, err, unit.ErrNilUnit)

	var zero unit.Quantity[float64]
	_, err = zero.In(f.meters)
	assert.ErrorIs(t, err, unit.ErrNilQuantity)
	assert.True(t, zero.IsDimensionless())
	assert.Equal(t, "<nil>", zero.String())
}

// TestIn_RoundTrip: U(x).In(V).In(U) ≈ x, offsets included.
func TestIn_RoundTrip(t *testing.T) {
	f := newFixtures(t)
	families := [][]*unit.Unit[float64]{
		{f.meters, f.centimeters, f.kilometers, f.feet},
		{f.kelvin, f.celsius, f.fahrenheit, f.rankine},
		{f.seconds, f.hours},
	}
	amounts := []float64{0, 1, -40, 273.15, 1e-6, 12345.678}

	for _, fam := range families {
		for _, u := range fam {
			for _, v := range fam {
				for _, x := range amounts {
					there, err := u.Of(x).In(v)
					require.NoError(t, err)
					back, err := there.In(u)
					require.NoError(t, err)
					assert.True(t, scalar.EqualWithinAbsOrRel(x, back.Amount(), 1e-9, 1e-12),
						"%v%s → %s → %v", x, u.Symbol(), v.Symbol(), back.Amount())
				}
			}
		}
	}
}

// TestValue_Compare orders quantities by canonical value.
func TestValue_Compare(t *testing.T) {
	f := newFixtures(t)

	assert.InDelta(t, 273.15, f.celsius.Of(0).Value(), tol)
	assert.InDelta(t, 1500, f.kilometers.Of(1.5).Value(), tol)

	c, err := f.kilometers.Of(1).Compare(f.meters.Of(999))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = f.celsius.Of(-40).Compare(f.celsius.Of(-40))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	same, err := f.celsius.Of(-40).IsCloseTo(f.fahrenheit.Of(-40), tol)
	require.NoError(t, err)
	assert.True(t, same, "-40 is the same temperature in both scales")

	c, err = f.centimeters.Of(5).Compare(f.meters.Of(1))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = f.meters.Of(1).Compare(f.seconds.Of(1))
	assert.ErrorIs(t, err, unit.ErrDimensionMismatch)
}

// TestIsCloseTo uses an inclusive bound in other's unit.
func TestIsCloseTo(t *testing.T) {
	f := newFixtures(t)

	ok, err := f.meters.Of(1).IsCloseTo(f.centimeters.Of(100.5), 0.5)
	require.NoError(t, err)
	assert.True(t, ok, "|100 − 100.5| ≤ 0.5")

	ok, err = f.meters.Of(1).IsCloseTo(f.centimeters.Of(100.5), 0.4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.celsius.Of(100).IsCloseTo(f.fahrenheit.Of(212), 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.meters.Of(1).IsCloseTo(f.kelvin.Of(1), 1)
	assert.ErrorIs(t, err, unit.ErrDimensionMismatch)

	_, err = f.meters.Of(1).IsCloseTo(unit.Quantity[float64]{}, 1)
	assert.ErrorIs(t, err, unit.ErrNilQuantity)
}

// TestPlusMinus: the right-hand operand's unit wins.
func TestPlusMinus(t *testing.T) {
	f := newFixtures(t)

	sum, err := f.meters.Of(3).Plus(f.centimeters.Of(2))
	require.NoError(t, err)
	assert.InDelta(t, 302, sum.Amount(), tol)
	assert.Same(t, f.centimeters, sum.Unit())

	diff, err := f.meters.Of(3).Minus(f.centimeters.Of(2))
	require.NoError(t, err)
	assert.InDelta(t, 298, diff.Amount(), tol)

	swapped, err := f.centimeters.Of(2).Plus(f.meters.Of(3))
	require.NoError(t, err)
	assert.InDelta(t, 3.02, swapped.Amount(), tol)
	assert.Same(t, f.meters, swapped.Unit())

	warm, err := f.celsius.Of(20).Plus(f.kelvin.Of(10))
	require.NoError(t, err)
	assert.InDelta(t, 303.15, warm.Amount(), tol)

	_, err = f.meters.Of(1).Plus(f.seconds.Of(1))
	assert.ErrorIs(t, err, unit.ErrDimensionMismatch)

	_, err = f.meters.Of(1).Minus(unit.Quantity[float64]{})
	assert.ErrorIs(t, err, unit.ErrNilQuantity)
}

// TestScalarOps keep the unit.
func TestScalarOps(t *testing.T) {
	f := newFixtures(t)
	q := f.meters.Of(6)

	assert.Equal(t, 8.0, q.PlusAmount(2).Amount())
	assert.Equal(t, 4.0, q.MinusAmount(2).Amount())
	assert.Equal(t, 12.0, q.TimesScalar(2).Amount())
	assert.Same(t, f.meters, q.TimesScalar(2).Unit())

	half, err := q.PerScalar(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, half.Amount())

	inf, err := q.PerScalar(0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Amount(), 1))
}

// TestTimes covers compound products and the dimensionless fold.
func TestTimes(t *testing.T) {
	f := newFixtures(t)

	area, err := f.meters.Of(3).Times(f.centimeters.Of(50))
	require.NoError(t, err)
	assert.InDelta(t, 150, area.Amount(), tol)
	assert.Equal(t, "m⋅cm", area.Unit().Symbol())
	assert.True(t, area.Dimension().Equal(dimension.Area))
	assert.InDelta(t, 1.5, area.Value(), tol)

	left, err := f.percent.Of(50).Times(f.meters.Of(10))
	require.NoError(t, err)
	assert.InDelta(t, 5, left.Amount(), tol)
	assert.Same(t, f.meters, left.Unit())

	right, err := f.meters.Of(10).Times(f.percent.Of(50))
	require.NoError(t, err)
	assert.InDelta(t, 5, right.Amount(), tol)
	assert.Same(t, f.meters, right.Unit())

	warm, err := f.percent.Of(50).Times(f.celsius.Of(10))
	require.NoError(t, err, "a ratio scales an offset quantity")
	assert.InDelta(t, 5, warm.Amount(), tol)
	assert.Same(t, f.celsius, warm.Unit())

	warm, err = f.celsius.Of(10).Times(f.percent.Of(50))
	require.NoError(t, err)
	assert.InDelta(t, 5, warm.Amount(), tol)
	assert.Same(t, f.celsius, warm.Unit())

	_, err = f.celsius.Of(1).Times(f.meters.Of(1))
	assert.ErrorIs(t, err, unit.ErrOffsetIncompatible)

	_, err = f.meters.Of(1).Times(unit.Quantity[float64]{})
	assert.ErrorIs(t, err, unit.ErrNilQuantity)
}

// TestPer covers quotients, both dimensionless folds and zero divisors.
func TestPer(t *testing.T) {
	f := newFixtures(t)

	speed, err := f.meters.Of(5).Per(f.seconds.Of(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, speed.Amount(), tol)
	assert.Equal(t, "m/s", speed.Unit().Symbol())
	assert.Equal(t, map[string]int{"length": 1, "time": -1}, speed.Dimension().Map())

	byRatio, err := f.meters.Of(10).Per(f.percent.Of(50))
	require.NoError(t, err)
	assert.InDelta(t, 20, byRatio.Amount(), tol)
	assert.Same(t, f.meters, byRatio.Unit())

	rate, err := f.percent.Of(50).Per(f.hours.Of(2))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, rate.Amount(), tol)
	assert.Equal(t, "1/h", rate.Unit().Symbol())
	assert.True(t, rate.Dimension().Equal(dimension.Frequency))

	inf, err := f.meters.Of(1).Per(f.seconds.Of(0))
	require.NoError(t, err, "division by zero follows the backend")
	assert.True(t, math.IsInf(inf.Amount(), 1))

	_, err = f.meters.Of(1).Per(f.celsius.Of(1))
	assert.ErrorIs(t, err, unit.ErrOffsetIncompatible)

	split, err := f.celsius.Of(10).Per(f.percent.Of(50))
	require.NoError(t, err)
	assert.InDelta(t, 20, split.Amount(), tol)
	assert.Same(t, f.celsius, split.Unit())

	_, err = f.percent.Of(50).Per(f.celsius.Of(1))
	assert.ErrorIs(t, err, unit.ErrOffsetIncompatible, "1/°C is undefined")
}

// TestBigFloat_StaysFinite runs quantity arithmetic on *big.Float: zero
// divisors and infinite inputs are errors, so Plus, Minus and Times never
// meet an Inf−Inf or 0×Inf form.
func TestBigFloat_StaysFinite(t *testing.T) {
	bf := unit.NewFactory[*big.Float](arithmetic.BigFloat{})
	m := unit.Must(bf.MakeUnit("m", dimension.Length))
	s := unit.Must(bf.MakeUnit("s", dimension.Time))

	one := unit.Must(m.OfNative(1))
	zero := unit.Must(s.OfNative(0))

	_, err := one.Per(zero)
	assert.ErrorIs(t, err, arithmetic.ErrDivisionByZero)

	_, err = zero.Reciprocal()
	assert.ErrorIs(t, err, arithmetic.ErrDivisionByZero)

	_, err = m.OfNative(math.Inf(1))
	assert.ErrorIs(t, err, arithmetic.ErrNotFinite)

	huge := unit.Must(m.OfNative(1e308))
	area, err := huge.Times(huge)
	require.NoError(t, err, "beyond float64 range but finite")
	assert.False(t, area.Amount().IsInf())

	back, err := area.Minus(area)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Amount().Sign())

	sum, err := huge.Plus(huge.TimesScalar(big.NewFloat(-1)))
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Amount().Sign())

	nothing, err := zero.Times(unit.Must(s.OfNative(5)))
	require.NoError(t, err)
	assert.Equal(t, 0, nothing.Amount().Sign())
}

// TestPer_DecimalByZero surfaces the fixed-point division error.
func TestPer_DecimalByZero(t *testing.T) {
	dec := unit.NewFactory[sdkDec](arithmetic.Decimal{})
	m := unit.Must(dec.MakeUnit("m", dimension.Length))
	s := unit.Must(dec.MakeUnit("s", dimension.Time))

	one := unit.Must(m.OfNative(1))
	zero := unit.Must(s.OfNative(0))

	_, err := one.Per(zero)
	assert.ErrorIs(t, err, arithmetic.ErrDivisionByZero)

	_, err = zero.Reciprocal()
	assert.ErrorIs(t, err, arithmetic.ErrDivisionByZero)
}

// TestReciprocalSquaredCubed move amount and unit in lock-step.
func TestReciprocalSquaredCubed(t *testing.T) {
	f := newFixtures(t)

	hz, err := f.seconds.Of(4).Reciprocal()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, hz.Amount(), tol)
	assert.Equal(t, map[string]int{"time": -1}, hz.Dimension().Map())

	inf, err := f.seconds.Of(0).Reciprocal()
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Amount(), 1))

	sq, err := f.meters.Of(3).Squared()
	require.NoError(t, err)
	assert.InDelta(t, 9, sq.Amount(), tol)
	assert.Equal(t, "m²", sq.Unit().Symbol())

	cube, err := f.kilometers.Of(2).Cubed()
	require.NoError(t, err)
	assert.InDelta(t, 8, cube.Amount(), tol)
	assert.InDelta(t, 8e9, cube.Value(), 1e-3)

	_, err = f.celsius.Of(3).Squared()
	assert.ErrorIs(t, err, unit.ErrOffsetIncompatible)

	_, err = unit.Quantity[float64]{}.Cubed()
	assert.ErrorIs(t, err, unit.ErrNilQuantity)
}

// TestString renders en-US grouping, ≤3 fraction digits and no space.
func TestString(t *testing.T) {
	f := newFixtures(t)
	tests := []struct {
		q    unit.Quantity[float64]
		want string
	}{
		{f.meters.Of(5), "5m"},
		{f.meters.Of(1000), "1,000m"},
		{f.meters.Of(1.0 / 3), "0.333m"},
		{f.meters.Of(2.0 / 3), "0.667m"},
		{f.meters.Of(-1234.5678), "-1,234.568m"},
		{f.celsius.Of(21.5), "21.5°C"},
		{f.scalar.Of(0.5), "0.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.String())
	}
}
