// Package interval implements intervals over the numeric domains of package
// domain: construction with open or closed bounds, normalization to closed
// bounds, a total order, and Allen's interval relations across domains.
package interval

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/vipcxj/intervals/internal/domain"
)

// Span is the kind-independent view of an interval used for ordering and
// relations. Two spans may be drawn from different domains.
type Span interface {
	Kind() domain.Kind
	// NormStart and NormEnd return the endpoints of the equivalent closed
	// interval.
	NormStart() domain.Value
	NormEnd() domain.Value
	UniqueIdentifier() string
	String() string
}

// Interval is an immutable range between two endpoints of type T, each of
// which may be open or closed. An unbounded side is stored as the domain's
// minimum or maximum.
//
// The zero value is the closed interval [0,0].
type Interval[T domain.Number] struct {
	start     T
	end       T
	openStart bool
	openEnd   bool
}

var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for diagnostics. It must be called
// before intervals are used concurrently.
func SetLogger(l logrus.FieldLogger) {
	logger = l
}

// New returns the interval between start and end.
func New[T domain.Number](start, end T, openStart, openEnd bool) (Interval[T], error) {
	return build("interval.new", &start, &end, openStart, openEnd)
}

// Bounded is the general constructor: a nil start or end leaves that side
// unbounded.
func Bounded[T domain.Number](start, end *T, openStart, openEnd bool) (Interval[T], error) {
	return build("interval.new", start, end, openStart, openEnd)
}

// Closed returns [start,end].
func Closed[T domain.Number](start, end T) (Interval[T], error) {
	return New(start, end, false, false)
}

// Open returns (start,end).
func Open[T domain.Number](start, end T) (Interval[T], error) {
	return New(start, end, true, true)
}

// AtLeast returns [start,∞).
func AtLeast[T domain.Number](start T) (Interval[T], error) {
	return build("interval.new", &start, nil, false, true)
}

// GreaterThan returns (start,∞).
func GreaterThan[T domain.Number](start T) (Interval[T], error) {
	return build("interval.new", &start, nil, true, true)
}

// AtMost returns (-∞,end].
func AtMost[T domain.Number](end T) (Interval[T], error) {
	return build("interval.new", nil, &end, true, false)
}

// LessThan returns (-∞,end).
func LessThan[T domain.Number](end T) (Interval[T], error) {
	return build("interval.new", nil, &end, true, true)
}

// Unbounded returns (-∞,∞).
func Unbounded[T domain.Number]() Interval[T] {
	k := domain.KindOf[T]()
	return Interval[T]{
		start:     domain.As[T](domain.Min(k)),
		end:       domain.As[T](domain.Max(k)),
		openStart: true,
		openEnd:   true,
	}
}

// Must panics if err is non-nil.
func Must[T domain.Number](iv Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return iv
}

// Restore rebuilds an interval from its persisted fields, running the same
// validation as New. It fails with ErrIllegalInterval when kind is not the
// kind of T.
func Restore[T domain.Number](kind domain.Kind, start, end *T, openStart, openEnd bool) (Interval[T], error) {
	const op = "interval.restore"
	if err := domain.CheckKind(op, kind); err != nil {
		return Interval[T]{}, err
	}
	if want := domain.KindOf[T](); kind != want {
		return Interval[T]{}, domain.NewError(op, domain.IllegalInterval, kind.String(),
			"values of kind %s cannot be restored into an interval of kind %s", kind, want)
	}
	return build(op, start, end, openStart, openEnd)
}

func (i Interval[T]) Kind() domain.Kind {
	return domain.KindOf[T]()
}

// Start returns the raw start as supplied at construction.
func (i Interval[T]) Start() T {
	return i.start
}

// End returns the raw end as supplied at construction.
func (i Interval[T]) End() T {
	return i.end
}

func (i Interval[T]) OpenStart() bool {
	return i.openStart
}

func (i Interval[T]) OpenEnd() bool {
	return i.openEnd
}

// StartUnbounded reports whether the start is the domain minimum.
func (i Interval[T]) StartUnbounded() bool {
	return domain.Of(i.start).IsMin()
}

// EndUnbounded reports whether the end is the domain maximum.
func (i Interval[T]) EndUnbounded() bool {
	return domain.Of(i.end).IsMax()
}

func (i Interval[T]) NormStart() domain.Value {
	return normalize(domain.Of(i.start), i.openStart, true)
}

func (i Interval[T]) NormEnd() domain.Value {
	return normalize(domain.Of(i.end), i.openEnd, false)
}

// NormalizedStart is NormStart as a T.
func (i Interval[T]) NormalizedStart() T {
	return domain.As[T](i.NormStart())
}

// NormalizedEnd is NormEnd as a T.
func (i Interval[T]) NormalizedEnd() T {
	return domain.As[T](i.NormEnd())
}

// Normalized returns the equivalent closed interval.
func (i Interval[T]) Normalized() Interval[T] {
	return Interval[T]{
		start: i.NormalizedStart(),
		end:   i.NormalizedEnd(),
	}
}

// Clone returns an interval with identical raw fields.
func (i Interval[T]) Clone() Interval[T] {
	return Interval[T]{
		start:     i.start,
		end:       i.end,
		openStart: i.openStart,
		openEnd:   i.openEnd,
	}
}

// CompareTo orders i and o by normalized start, then normalized end.
func (i Interval[T]) CompareTo(o Span) int {
	return Compare(i, o)
}

// Comparator returns the ordering used by CompareTo.
func (i Interval[T]) Comparator() Comparator {
	return Natural
}

// Overlaps reports whether i and o share at least one point.
func (i Interval[T]) Overlaps(o Span) bool {
	return Overlap(i, o)
}

// Contains reports whether p lies within the closed form of i.
func (i Interval[T]) Contains(p domain.Value) bool {
	return Contains(i, p)
}

// RelationTo returns the Allen relation of i to o.
func (i Interval[T]) RelationTo(o Span) Relation {
	return Relate(i, o)
}

// UniqueIdentifier renders the closed form of i as "[start,end]". Intervals
// with the same identifier are equal.
func (i Interval[T]) UniqueIdentifier() string {
	return identifier(i.NormStart(), i.NormEnd())
}

// Equal reports whether i and o have the same closed form.
func (i Interval[T]) Equal(o Span) bool {
	return Equal(i, o)
}

// Hash is consistent with Equal.
func (i Interval[T]) Hash() uint64 {
	return xxhash.Sum64String(i.UniqueIdentifier())
}

// String returns the raw interval, e.g. "(1,5]". Unbounded sides show as ∞.
func (i Interval[T]) String() string {
	return i.format(true)
}

// Notation returns a string that Parse accepts and that yields an equal
// interval. Unbounded sides are left empty.
func (i Interval[T]) Notation() string {
	return i.format(false)
}

func (i Interval[T]) format(showInfty bool) string {
	leftB, rightB := "[", "]"
	if i.openStart {
		leftB = "("
	}
	if i.openEnd {
		rightB = ")"
	}

	var leftStr, rightStr string
	if i.StartUnbounded() {
		leftB = "("
		if showInfty {
			leftStr = "-∞"
		}
	} else {
		leftStr = domain.Of(i.start).String()
	}
	if i.EndUnbounded() {
		rightB = ")"
		if showInfty {
			rightStr = "∞"
		}
	} else {
		rightStr = domain.Of(i.end).String()
	}

	return fmt.Sprintf("%s%s,%s%s", leftB, leftStr, rightStr, rightB)
}

func identifier(start, end domain.Value) string {
	for _, v := range [...]domain.Value{start, end} {
		if v.BeyondExact() && !v.IsMin() && !v.IsMax() {
			logger.WithFields(logrus.Fields{
				"kind":  v.Kind(),
				"value": v.String(),
			}).Warn("identifier of a floating value beyond 2^54-2 may not be unique")
		}
	}
	return "[" + start.Unique() + "," + end.Unique() + "]"
}
