package interval

import (
	"slices"

	"github.com/vipcxj/intervals/internal/domain"
)

// Comparator orders spans, possibly of different kinds. It is the capability
// a sorted container needs to hold intervals.
type Comparator interface {
	Compare(a, b Span) int
}

// ComparatorFunc adapts a function to Comparator.
type ComparatorFunc func(a, b Span) int

func (f ComparatorFunc) Compare(a, b Span) int {
	return f(a, b)
}

// Natural orders spans by normalized start, then normalized end.
var Natural Comparator = ComparatorFunc(Compare)

// Compare returns -1, 0 or 1 as a sorts before, with, or after b in the
// natural order.
func Compare(a, b Span) int {
	if c := domain.Compare(a.NormStart(), b.NormStart()); c != 0 {
		return c
	}
	return domain.Compare(a.NormEnd(), b.NormEnd())
}

// Sort sorts spans in place with c, keeping equal spans in their original order.
func Sort[S Span](spans []S, c Comparator) {
	slices.SortStableFunc(spans, func(a, b S) int {
		return c.Compare(a, b)
	})
}
