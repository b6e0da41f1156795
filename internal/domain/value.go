package domain

import (
	"math"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of Go types that back a Kind.
type Number interface {
	constraints.Signed | constraints.Float
}

// Value is a single point of one Kind. Integer kinds keep their value in i,
// floating kinds in f; a KindFloat value always holds a float32 widened to
// float64 exactly.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// KindOf returns the Kind backing the Go type T. Plain int maps to the
// kind of its platform width.
func KindOf[T Number]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return KindByte
	case reflect.Int16:
		return KindShort
	case reflect.Int32:
		return KindInt
	case reflect.Int64:
		return KindLong
	case reflect.Int:
		if strconv.IntSize == 32 {
			return KindInt
		}
		return KindLong
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	}
	panic("domain: unreachable type kind")
}

// Of wraps v as a Value of KindOf[T].
func Of[T Number](v T) Value {
	k := KindOf[T]()
	if k.IsFloat() {
		return Value{kind: k, f: float64(v)}
	}
	return Value{kind: k, i: int64(v)}
}

// As converts v to T, coercing it to KindOf[T] first.
func As[T Number](v Value) T {
	v = v.Coerce(KindOf[T]())
	if v.kind.IsFloat() {
		return T(v.f)
	}
	return T(v.i)
}

// Int returns an integer value of kind k, narrowed like Coerce would.
func Int(k Kind, n int64) Value {
	if k.IsFloat() {
		return Value{kind: KindLong, i: n}.Coerce(k)
	}
	return Value{kind: k, i: wrap(n, k)}
}

// Float returns a floating value of kind k, narrowed like Coerce would.
func Float(k Kind, x float64) Value {
	return Value{kind: KindDouble, f: x}.Coerce(k)
}

func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the value as an int64, truncating floating values.
func (v Value) Int64() int64 {
	if v.kind.IsFloat() {
		return saturate(v.f, math.MinInt64, math.MaxInt64)
	}
	return v.i
}

// Float64 returns the value as a float64.
func (v Value) Float64() float64 {
	if v.kind.IsFloat() {
		return v.f
	}
	return float64(v.i)
}

func (v Value) IsNaN() bool {
	return v.kind.IsFloat() && math.IsNaN(v.f)
}

// IsInf reports whether v is an infinity with the given sign, as math.IsInf.
func (v Value) IsInf(sign int) bool {
	return v.kind.IsFloat() && math.IsInf(v.f, sign)
}

// Min returns the smallest finite value of k.
func Min(k Kind) Value {
	switch k {
	case KindByte:
		return Value{kind: k, i: math.MinInt8}
	case KindShort:
		return Value{kind: k, i: math.MinInt16}
	case KindInt:
		return Value{kind: k, i: math.MinInt32}
	case KindLong:
		return Value{kind: k, i: math.MinInt64}
	case KindFloat:
		return Value{kind: k, f: -math.MaxFloat32}
	case KindDouble:
		return Value{kind: k, f: -math.MaxFloat64}
	}
	panic("domain: unsupported kind " + k.String())
}

// Max returns the largest finite value of k.
func Max(k Kind) Value {
	switch k {
	case KindByte:
		return Value{kind: k, i: math.MaxInt8}
	case KindShort:
		return Value{kind: k, i: math.MaxInt16}
	case KindInt:
		return Value{kind: k, i: math.MaxInt32}
	case KindLong:
		return Value{kind: k, i: math.MaxInt64}
	case KindFloat:
		return Value{kind: k, f: math.MaxFloat32}
	case KindDouble:
		return Value{kind: k, f: math.MaxFloat64}
	}
	panic("domain: unsupported kind " + k.String())
}

// IsMin reports whether v is the minimum sentinel of its kind.
func (v Value) IsMin() bool {
	return v == Min(v.kind)
}

// IsMax reports whether v is the maximum sentinel of its kind.
func (v Value) IsMax() bool {
	return v == Max(v.kind)
}

// Successor returns the next representable value toward +∞. It saturates at
// the kind's minimum and maximum.
func (v Value) Successor() Value {
	if v.IsMin() || v.IsMax() {
		return v
	}
	return v.step(true)
}

// Predecessor returns the next representable value toward -∞. It saturates at
// the kind's minimum and maximum.
func (v Value) Predecessor() Value {
	if v.IsMin() || v.IsMax() {
		return v
	}
	return v.step(false)
}

func (v Value) step(up bool) Value {
	switch v.kind {
	case KindFloat:
		dir := float32(math.Inf(-1))
		if up {
			dir = float32(math.Inf(1))
		}
		v.f = float64(math.Nextafter32(float32(v.f), dir))
	case KindDouble:
		v.f = math.Nextafter(v.f, math.Inf(boolSign(up)))
	default:
		if up {
			v.i = wrap(v.i+1, v.kind)
		} else {
			v.i = wrap(v.i-1, v.kind)
		}
	}
	return v
}

// IsReserved reports whether v is one of the four values of its kind that can
// never be an interval endpoint: the minimum, the maximum and their direct
// neighbours.
func (v Value) IsReserved() bool {
	lo, hi := Min(v.kind), Max(v.kind)
	return v == lo || v == hi || v == lo.step(true) || v == hi.step(false)
}

// Coerce converts v into kind k. Integer narrowing wraps; floating to integer
// truncates toward zero and saturates at the 32-bit range for byte, short and
// int (then wraps for byte and short) and at the 64-bit range for long.
// NaN converts to zero.
func (v Value) Coerce(k Kind) Value {
	if v.kind == k {
		return v
	}
	if k.IsFloat() {
		x := v.Float64()
		if k == KindFloat {
			x = float64(float32(x))
		}
		return Value{kind: k, f: x}
	}

	n := v.i
	if v.kind.IsFloat() {
		if k == KindLong {
			n = saturate(v.f, math.MinInt64, math.MaxInt64)
		} else {
			n = saturate(v.f, math.MinInt32, math.MaxInt32)
		}
	}
	return Value{kind: k, i: wrap(n, k)}
}

// Equal reports whether a and b are the same point of the same kind.
func (v Value) Equal(o Value) bool {
	return v == o
}

func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

func wrap(n int64, k Kind) int64 {
	switch k {
	case KindByte:
		return int64(int8(n))
	case KindShort:
		return int64(int16(n))
	case KindInt:
		return int64(int32(n))
	}
	return n
}

func saturate(x float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x <= float64(lo):
		return lo
	case x >= float64(hi):
		return hi
	}
	return int64(x)
}

func boolSign(up bool) int {
	if up {
		return 1
	}
	return -1
}
