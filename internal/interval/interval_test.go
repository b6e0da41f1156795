package interval

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipcxj/intervals/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func closed32(s, e int32) Interval[int32] {
	return Must[int32](Closed[int32](s, e))
}

func closed16(s, e int16) Interval[int16] {
	return Must[int16](Closed[int16](s, e))
}

func closed64(s, e float64) Interval[float64] {
	return Must[float64](Closed[float64](s, e))
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		fn   func() error
	}{
		{"end_before_start", domain.ErrIllegalInterval, func() error {
			_, err := New[int32](10, 5, false, false)
			return err
		}},
		{"empty_after_normalization", domain.ErrIllegalInterval, func() error {
			_, err := Open[int32](1, 2)
			return err
		}},
		{"nan_start", domain.ErrInvalidPoint, func() error {
			_, err := New(math.NaN(), 1.0, false, false)
			return err
		}},
		{"nan_end_float", domain.ErrInvalidPoint, func() error {
			_, err := New(float32(0), float32(math.NaN()), false, false)
			return err
		}},
		{"int_min", domain.ErrReservedEdgeValue, func() error {
			_, err := New[int32](math.MinInt32, 0, false, false)
			return err
		}},
		{"int_min_neighbour_open", domain.ErrReservedEdgeValue, func() error {
			_, err := Open[int32](math.MinInt32+1, 0)
			return err
		}},
		{"byte_max_neighbour", domain.ErrReservedEdgeValue, func() error {
			_, err := Closed[int8](0, 126)
			return err
		}},
		{"double_max", domain.ErrReservedEdgeValue, func() error {
			_, err := AtMost(math.MaxFloat64)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_InfinityBecomesUnbounded(t *testing.T) {
	iv, err := New(math.Inf(-1), 0.0, false, false)
	require.NoError(t, err)
	assert.True(t, iv.StartUnbounded())
	assert.Equal(t, -math.MaxFloat64, iv.Start())
	assert.Equal(t, "(-∞,0]", iv.String())

	f, err := New(float32(1), float32(math.Inf(1)), false, true)
	require.NoError(t, err)
	assert.True(t, f.EndUnbounded())
	assert.Equal(t, float32(math.MaxFloat32), f.End())
	assert.Equal(t, float32(math.MaxFloat32), f.NormalizedEnd())
}

func TestConvenienceConstructors(t *testing.T) {
	cases := []struct {
		name      string
		iv        Interval[int32]
		str       string
		notation  string
		openStart bool
		openEnd   bool
	}{
		{"closed", closed32(1, 5), "[1,5]", "[1,5]", false, false},
		{"open", Must[int32](Open[int32](1, 5)), "(1,5)", "(1,5)", true, true},
		{"at_least", Must[int32](AtLeast[int32](3)), "[3,∞)", "[3,)", false, true},
		{"greater_than", Must[int32](GreaterThan[int32](3)), "(3,∞)", "(3,)", true, true},
		{"at_most", Must[int32](AtMost[int32](3)), "(-∞,3]", "(,3]", true, false},
		{"less_than", Must[int32](LessThan[int32](3)), "(-∞,3)", "(,3)", true, true},
		{"unbounded", Unbounded[int32](), "(-∞,∞)", "(,)", true, true},
		{"zero", Interval[int32]{}, "[0,0]", "[0,0]", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.iv.String())
			assert.Equal(t, tc.notation, tc.iv.Notation())
			assert.Equal(t, tc.openStart, tc.iv.OpenStart())
			assert.Equal(t, tc.openEnd, tc.iv.OpenEnd())
			assert.Equal(t, domain.KindInt, tc.iv.Kind())
		})
	}
}

func TestNormalization(t *testing.T) {
	iv := Must[int32](New[int32](0, 5, true, false))
	assert.Equal(t, int32(1), iv.NormalizedStart())
	assert.Equal(t, int32(5), iv.NormalizedEnd())
	assert.Equal(t, int32(0), iv.Start())

	d := Must[float64](Open[float64](1, 2))
	assert.Equal(t, math.Nextafter(1, math.Inf(1)), d.NormalizedStart())
	assert.Equal(t, math.Nextafter(2, math.Inf(-1)), d.NormalizedEnd())

	f := Must[float32](Open[float32](1, 2))
	assert.Equal(t, math.Nextafter32(1, float32(math.Inf(1))), f.NormalizedStart())
	assert.Equal(t, domain.KindFloat, f.NormStart().Kind())
}

func checkNormalized[T domain.Number](t *testing.T, iv Interval[T]) {
	t.Helper()
	n := iv.Normalized()
	assert.False(t, n.OpenStart())
	assert.False(t, n.OpenEnd())
	assert.Equal(t, n, n.Normalized())
	assert.Equal(t, iv.UniqueIdentifier(), n.UniqueIdentifier())
	assert.Equal(t, iv.NormalizedStart(), n.Start())
	assert.Equal(t, iv.NormalizedEnd(), n.End())
	assert.True(t, iv.Equal(n))
}

func TestNormalized(t *testing.T) {
	checkNormalized(t, Must[int32](Open[int32](1, 5)))
	checkNormalized(t, Must[float64](New[float64](0.5, 1, true, false)))
	checkNormalized(t, Must[float32](New[float32](0.5, 1, false, true)))
	checkNormalized(t, Must[int64](AtLeast[int64](7)))
	checkNormalized(t, Unbounded[int8]())
	checkNormalized(t, closed16(-3, -3))
}

func TestUniqueIdentifier(t *testing.T) {
	a := closed32(1, 5)
	b := Must[int32](New[int32](0, 5, true, false))

	assert.Equal(t, "[1,5]", a.UniqueIdentifier())
	assert.Equal(t, "[1,5]", b.UniqueIdentifier())
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// across kinds
	assert.True(t, a.Equal(closed64(1, 5)))
	assert.True(t, closed16(1, 5).Equal(a))
	assert.False(t, a.Equal(closed32(1, 6)))

	assert.Equal(t, "[0.5,2.25]", closed64(0.5, 2.25).UniqueIdentifier())
	assert.Equal(t, "[-128,127]", Unbounded[int8]().UniqueIdentifier())
}

func TestUniqueIdentifier_WarnsBeyondExact(t *testing.T) {
	l, hook := logtest.NewNullLogger()
	SetLogger(l)
	t.Cleanup(func() { SetLogger(logrus.StandardLogger()) })

	_ = closed64(1e17, 2e17).UniqueIdentifier()
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, domain.KindDouble, hook.LastEntry().Data["kind"])

	hook.Reset()
	_ = Unbounded[float64]().UniqueIdentifier()
	_ = closed64(1, 1e15).UniqueIdentifier()
	_ = Must[int64](AtLeast[int64](1 << 60)).UniqueIdentifier()
	assert.Empty(t, hook.AllEntries())
}

func TestClone(t *testing.T) {
	iv := Must[float64](New[float64](0.5, 3, true, false))
	c := iv.Clone()
	assert.Equal(t, iv, c)
	assert.Equal(t, iv.String(), c.String())
}

func TestRestore(t *testing.T) {
	iv, err := Restore[int32](domain.KindInt, ptr(int32(1)), ptr(int32(5)), false, true)
	require.NoError(t, err)
	assert.Equal(t, Must[int32](New[int32](1, 5, false, true)), iv)

	iv, err = Restore[int32](domain.KindInt, nil, ptr(int32(5)), true, false)
	require.NoError(t, err)
	assert.Equal(t, Must[int32](AtMost[int32](5)), iv)

	_, err = Restore[int32](domain.KindLong, ptr(int32(1)), ptr(int32(5)), false, false)
	assert.ErrorIs(t, err, domain.ErrIllegalInterval)

	_, err = Restore[int32](domain.Kind(42), ptr(int32(1)), ptr(int32(5)), false, false)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDomain)

	_, err = Restore[int32](domain.KindInt, ptr(int32(10)), ptr(int32(1)), false, false)
	assert.ErrorIs(t, err, domain.ErrIllegalInterval)

	_, err = Restore[int8](domain.KindByte, ptr(int8(-127)), nil, false, true)
	assert.ErrorIs(t, err, domain.ErrReservedEdgeValue)
}

func TestNewOf(t *testing.T) {
	s, err := NewOf(domain.KindShort, int64(7), 9.0, false, false)
	require.NoError(t, err)
	assert.IsType(t, Interval[int16]{}, s)
	assert.Equal(t, "[7,9]", s.String())

	s, err = NewOf(domain.KindInt, nil, 5, true, false)
	require.NoError(t, err)
	assert.Equal(t, "(-∞,5]", s.String())

	s, err = NewOf(domain.KindFloat, domain.Of(0.5), uint8(3), false, true)
	require.NoError(t, err)
	assert.IsType(t, Interval[float32]{}, s)
	assert.Equal(t, "[0.5,3)", s.String())

	_, err = NewOf(domain.KindInt, "abc", 5, false, false)
	assert.ErrorIs(t, err, domain.ErrIllegalInterval)

	_, err = NewOf(domain.Kind(99), 1, 2, false, false)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDomain)

	_, err = NewOf(domain.KindDouble, math.NaN(), 1.0, false, false)
	assert.ErrorIs(t, err, domain.ErrInvalidPoint)
}
