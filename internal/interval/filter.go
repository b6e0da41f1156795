package interval

import (
	"fmt"
	"strings"

	"github.com/vipcxj/intervals/internal/domain"
)

// Filter is a union of intervals of one kind. A point is accepted if it falls
// within any of them; the zero Filter accepts nothing.
type Filter[T domain.Number] struct {
	Intervals []Interval[T]
}

// Matcher is the kind-independent view of a Filter.
type Matcher interface {
	Kind() domain.Kind
	Contains(p domain.Value) bool
	IsAll() bool
	String() string
}

const filterSep = "|"

// ParseFilter parses v and returns a Filter or an error.
//
// Syntax (intervals are separated by '|' characters):
//
//	""                 -> accepts nothing
//	"all"              -> accepts the whole domain
//	"[1,3]|(5,9]|>=20" -> any notation accepted by Parse
//
// The intervals need not be ordered or disjoint.
func ParseFilter[T domain.Number](v string) (Filter[T], error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Filter[T]{}, nil
	}
	if v == "all" {
		return Filter[T]{Intervals: []Interval[T]{Unbounded[T]()}}, nil
	}

	tokens := strings.Split(v, filterSep)
	f := Filter[T]{Intervals: make([]Interval[T], 0, len(tokens))}
	for n, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			return Filter[T]{}, fmt.Errorf("empty interval at position %d", n)
		}
		iv, err := Parse[T](tok, false)
		if err != nil {
			return Filter[T]{}, fmt.Errorf("interval %q at position %d: %w", tok, n, err)
		}
		f.Intervals = append(f.Intervals, iv)
	}
	return f, nil
}

func (f Filter[T]) Kind() domain.Kind {
	return domain.KindOf[T]()
}

// Test reports whether p is accepted by the filter.
func (f Filter[T]) Test(p T) bool {
	return f.Contains(domain.Of(p))
}

// Contains reports whether p, of any kind, is accepted by the filter.
func (f Filter[T]) Contains(p domain.Value) bool {
	for _, iv := range f.Intervals {
		if Contains(iv, p) {
			return true
		}
	}
	return false
}

// IsNotEmpty reports whether the filter accepts at least one point.
func (f Filter[T]) IsNotEmpty() bool {
	return len(f.Intervals) > 0
}

// IsAll reports whether the filter accepts every point of its kind.
func (f Filter[T]) IsAll() bool {
	norm := f.Normalize()
	return len(norm) == 1 && norm[0].StartUnbounded() && norm[0].EndUnbounded()
}

// Normalize returns the closed forms of the intervals sorted by start, with
// overlapping and meeting intervals merged. The result is disjoint and no
// two consecutive intervals meet. Sides reaching the edge of the domain are
// returned unbounded.
func (f Filter[T]) Normalize() []Interval[T] {
	if len(f.Intervals) == 0 {
		return nil
	}

	closed := make([]Interval[T], len(f.Intervals))
	for n, iv := range f.Intervals {
		closed[n] = iv.Normalized()
	}
	Sort(closed, Natural)

	merged := closed[:1]
	for _, cur := range closed[1:] {
		last := &merged[len(merged)-1]
		if domain.Compare(cur.NormStart(), last.NormEnd().Successor()) > 0 {
			merged = append(merged, cur)
			continue
		}
		if domain.Compare(cur.NormEnd(), last.NormEnd()) > 0 {
			last.end = cur.end
		}
	}

	all := Unbounded[T]()
	for n := range merged {
		iv := &merged[n]
		if domain.Compare(iv.NormStart(), all.NormStart()) <= 0 {
			iv.start, iv.openStart = all.start, true
		}
		if domain.Compare(iv.NormEnd(), all.NormEnd()) >= 0 {
			iv.end, iv.openEnd = all.end, true
		}
	}
	return merged
}

// String normalizes the filter and renders it so that ParseFilter yields an
// equivalent filter: "all", or the intervals joined by '|' with single
// points written as a plain number.
func (f Filter[T]) String() string {
	norm := f.Normalize()
	if len(norm) == 0 {
		return ""
	}
	if len(norm) == 1 && norm[0].StartUnbounded() && norm[0].EndUnbounded() {
		return "all"
	}
	parts := make([]string, len(norm))
	for n, iv := range norm {
		if iv.start == iv.end {
			parts[n] = domain.Of(iv.start).String()
			continue
		}
		parts[n] = iv.Notation()
	}
	return strings.Join(parts, filterSep)
}

// ParseFilterOf parses v as a filter of kind k. See ParseFilter.
func ParseFilterOf(k domain.Kind, v string) (Matcher, error) {
	o, err := opsOf("interval.filter", k)
	if err != nil {
		return nil, err
	}
	return o.filter(v)
}
