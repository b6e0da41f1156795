package interval

import (
	"github.com/vipcxj/intervals/internal/domain"
)

func build[T domain.Number](op string, start, end *T, openStart, openEnd bool) (Interval[T], error) {
	var s, e *domain.Value
	if start != nil {
		v := domain.Of(*start)
		s = &v
	}
	if end != nil {
		v := domain.Of(*end)
		e = &v
	}
	return buildValues[T](op, s, e, openStart, openEnd)
}

// buildValues validates start then end, coerced to the kind of T, and checks
// that the normalized end does not precede the normalized start.
func buildValues[T domain.Number](op string, start, end *domain.Value, openStart, openEnd bool) (Interval[T], error) {
	k := domain.KindOf[T]()

	s, err := validate(op, k, start, true)
	if err != nil {
		return Interval[T]{}, err
	}
	e, err := validate(op, k, end, false)
	if err != nil {
		return Interval[T]{}, err
	}

	ns, ne := normalize(s, openStart, true), normalize(e, openEnd, false)
	if domain.Compare(ne, ns) < 0 {
		return Interval[T]{}, domain.NewError(op, domain.IllegalInterval, "",
			"the end value '%v' cannot be smaller than the start value '%v'", e, s)
	}

	return Interval[T]{
		start:     domain.As[T](s),
		end:       domain.As[T](e),
		openStart: openStart,
		openEnd:   openEnd,
	}, nil
}

// validate checks a raw endpoint against kind k. A nil endpoint is unbounded.
func validate(op string, k domain.Kind, raw *domain.Value, isStart bool) (domain.Value, error) {
	if raw == nil {
		if isStart {
			return domain.Min(k), nil
		}
		return domain.Max(k), nil
	}

	v := raw.Coerce(k)
	switch {
	case v.IsNaN():
		return domain.Value{}, domain.NewError(op, domain.InvalidPoint, v.String(),
			"the value NaN is not supported")
	case v.IsInf(-1):
		return domain.Min(k), nil
	case v.IsInf(1):
		return domain.Max(k), nil
	case v.IsReserved():
		return domain.Value{}, domain.NewError(op, domain.ReservedEdgeValue, v.String(),
			"the minimal and maximal values of %s and their neighbours are reserved", k)
	}
	return v, nil
}

// normalize maps an endpoint to its closed equivalent.
func normalize(v domain.Value, open, isStart bool) domain.Value {
	switch {
	case !open:
		return v
	case isStart:
		return v.Successor()
	default:
		return v.Predecessor()
	}
}
