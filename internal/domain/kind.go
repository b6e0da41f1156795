//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=lower -json -text
package domain

// Kind identifies one of the fixed numeric domains an interval can be drawn from.
type Kind int

const (
	KindByte Kind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
)

// Hierarchy is the widening order used to pick a common representation
// when two values of different kinds are compared. Wider kinds come later.
var Hierarchy = [...]Kind{
	KindByte,
	KindShort,
	KindInt,
	KindLong,
	KindFloat,
	KindDouble,
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat || k == KindDouble
}

// Rank returns the position of k in Hierarchy, or -1 if k is not part of it.
func (k Kind) Rank() int {
	for i, h := range Hierarchy {
		if h == k {
			return i
		}
	}
	return -1
}

// Promote returns the wider of a and b. If only one of them is ranked that one
// wins; if neither is, ok is false.
func Promote(a, b Kind) (k Kind, ok bool) {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < 0 && rb < 0:
		return 0, false
	case ra >= rb:
		return a, true
	default:
		return b, true
	}
}

// CheckKind fails with ErrUnsupportedDomain when k is outside the supported set.
func CheckKind(op string, k Kind) error {
	if !k.IsAKind() {
		return NewError(op, UnsupportedDomain, k.String(), "kind is not one of %v", KindStrings())
	}
	return nil
}
