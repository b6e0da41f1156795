package domain

import (
	"cmp"
	"strings"
)

// Compare orders a and b. Values of the same kind are compared directly,
// otherwise both are promoted to the wider kind of Hierarchy first.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		target, _ := Promote(a.kind, b.kind)
		a, b = a.Coerce(target), b.Coerce(target)
	}
	if a.kind.IsFloat() {
		return cmp.Compare(a.f, b.f)
	}
	return cmp.Compare(a.i, b.i)
}

// CompareAny orders two arbitrary values. Operands of the same ordered Go
// type (including Value and string) use their natural order. Otherwise both
// must be numbers and at least one of them must belong to a Kind; the other
// is converted to the wider kind. Anything else fails with ErrNotComparable.
func CompareAny(a, b any) (int, error) {
	if c, ok := naturalOrder(a, b); ok {
		return c, nil
	}

	ka, numA := numericKind(a)
	kb, numB := numericKind(b)
	if !numA || !numB {
		return 0, notComparable(a, b)
	}
	target, ok := Promote(ka, kb)
	if !ok {
		return 0, notComparable(a, b)
	}
	va, _ := ValueOf(a, target)
	vb, _ := ValueOf(b, target)
	return Compare(va, vb), nil
}

// ValueOf converts a Go number (or a Value) to a Value of kind k. ok is false
// when x is not a number.
func ValueOf(x any, k Kind) (v Value, ok bool) {
	switch n := x.(type) {
	case Value:
		return n.Coerce(k), true
	case int8:
		return Of(n).Coerce(k), true
	case int16:
		return Of(n).Coerce(k), true
	case int32:
		return Of(n).Coerce(k), true
	case int64:
		return Of(n).Coerce(k), true
	case int:
		return Of(n).Coerce(k), true
	case float32:
		return Of(n).Coerce(k), true
	case float64:
		return Of(n).Coerce(k), true
	case uint8:
		return Int(k, int64(n)), true
	case uint16:
		return Int(k, int64(n)), true
	case uint32:
		return Int(k, int64(n)), true
	case uint64:
		if k.IsFloat() {
			return Float(k, float64(n)), true
		}
		return Int(k, int64(n)), true
	case uint:
		if k.IsFloat() {
			return Float(k, float64(n)), true
		}
		return Int(k, int64(n)), true
	}
	return Value{}, false
}

// numericKind returns the Kind of x, or -1 for unsigned numbers which have no
// place in Hierarchy.
func numericKind(x any) (Kind, bool) {
	switch n := x.(type) {
	case Value:
		return n.kind, true
	case int8:
		return KindByte, true
	case int16:
		return KindShort, true
	case int32:
		return KindInt, true
	case int64:
		return KindLong, true
	case int:
		return KindOf[int](), true
	case float32:
		return KindFloat, true
	case float64:
		return KindDouble, true
	case uint8, uint16, uint32, uint64, uint:
		return -1, true
	}
	return 0, false
}

func naturalOrder(a, b any) (int, bool) {
	switch x := a.(type) {
	case Value:
		if y, ok := b.(Value); ok {
			return Compare(x, y), true
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), true
		}
	case int8:
		return sameType(x, b)
	case int16:
		return sameType(x, b)
	case int32:
		return sameType(x, b)
	case int64:
		return sameType(x, b)
	case int:
		return sameType(x, b)
	case uint8:
		return sameType(x, b)
	case uint16:
		return sameType(x, b)
	case uint32:
		return sameType(x, b)
	case uint64:
		return sameType(x, b)
	case uint:
		return sameType(x, b)
	case float32:
		return sameType(x, b)
	case float64:
		return sameType(x, b)
	}
	return 0, false
}

func sameType[T cmp.Ordered](x T, b any) (int, bool) {
	y, ok := b.(T)
	if !ok {
		return 0, false
	}
	return cmp.Compare(x, y), true
}

func notComparable(a, b any) error {
	return NewError("domain.compare", NotComparable, "",
		"the values '%v (%T)' and '%v (%T)' are not comparable", a, a, b, b)
}
