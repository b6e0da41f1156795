package domain

import (
	"errors"
	"math"
	"strconv"
)

// exactLimit bounds the magnitude of floating values whose identifiers are
// guaranteed not to collide with their neighbours.
const exactLimit = 1<<54 - 2

// Unique renders v for use in a unique identifier: integers in decimal and
// floating values in positional notation, integral ones without a fraction.
// KindFloat values are rendered at double precision.
func (v Value) Unique() string {
	if !v.kind.IsFloat() {
		return strconv.FormatInt(v.i, 10)
	}
	if v.f == 0 {
		return "0"
	}
	return strconv.FormatFloat(v.f, 'f', -1, 64)
}

// BeyondExact reports whether v is a floating value too large for its
// identifier to be unambiguous.
func (v Value) BeyondExact() bool {
	return v.kind.IsFloat() && math.Abs(v.f) > exactLimit
}

// Parse reads s as a value of kind k. Integers must fit k exactly; floating
// values beyond the range of k become infinities.
func Parse(k Kind, s string) (Value, error) {
	if k.IsFloat() {
		x, err := strconv.ParseFloat(s, k.bits())
		if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(x, 0)) {
			return Value{}, err
		}
		return Float(k, x), nil
	}
	n, err := strconv.ParseInt(s, 10, k.bits())
	if err != nil {
		return Value{}, err
	}
	return Int(k, n), nil
}

func (k Kind) bits() int {
	switch k {
	case KindByte:
		return 8
	case KindShort:
		return 16
	case KindInt, KindFloat:
		return 32
	}
	return 64
}
