package interval

import (
	"github.com/vipcxj/intervals/internal/domain"
)

// ops are the constructors of one kind with the type parameter erased.
type ops struct {
	build      func(op string, start, end *domain.Value, openStart, openEnd bool) (Span, error)
	parse      func(value string, emptyAsUnbounded bool) (Span, error)
	decodeCBOR func(data []byte) (Span, error)
	decodeJSON func(data []byte) (Span, error)
	filter     func(value string) (Matcher, error)
}

func opsFor[T domain.Number]() ops {
	return ops{
		build: func(op string, start, end *domain.Value, openStart, openEnd bool) (Span, error) {
			return span[T](buildValues[T](op, start, end, openStart, openEnd))
		},
		parse: func(value string, emptyAsUnbounded bool) (Span, error) {
			return span[T](Parse[T](value, emptyAsUnbounded))
		},
		decodeCBOR: func(data []byte) (Span, error) {
			var iv Interval[T]
			if err := iv.UnmarshalCBOR(data); err != nil {
				return nil, err
			}
			return iv, nil
		},
		decodeJSON: func(data []byte) (Span, error) {
			var iv Interval[T]
			if err := iv.UnmarshalJSON(data); err != nil {
				return nil, err
			}
			return iv, nil
		},
		filter: func(value string) (Matcher, error) {
			f, err := ParseFilter[T](value)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

var (
	byteOps   = opsFor[int8]()
	shortOps  = opsFor[int16]()
	intOps    = opsFor[int32]()
	longOps   = opsFor[int64]()
	floatOps  = opsFor[float32]()
	doubleOps = opsFor[float64]()
)

func opsOf(op string, k domain.Kind) (ops, error) {
	switch k {
	case domain.KindByte:
		return byteOps, nil
	case domain.KindShort:
		return shortOps, nil
	case domain.KindInt:
		return intOps, nil
	case domain.KindLong:
		return longOps, nil
	case domain.KindFloat:
		return floatOps, nil
	case domain.KindDouble:
		return doubleOps, nil
	}
	return ops{}, domain.CheckKind(op, k)
}

func span[T domain.Number](iv Interval[T], err error) (Span, error) {
	if err != nil {
		return nil, err
	}
	return iv, nil
}

// NewOf builds an interval of kind k from arbitrary numeric endpoints, which
// are coerced into k. A nil endpoint is unbounded. A non-numeric endpoint
// fails with ErrIllegalInterval and an unknown kind with ErrUnsupportedDomain.
//
// The result is an Interval[T] for the Go type T backing k.
func NewOf(k domain.Kind, start, end any, openStart, openEnd bool) (Span, error) {
	const op = "interval.new"
	o, err := opsOf(op, k)
	if err != nil {
		return nil, err
	}
	s, err := endpointOf(op, k, start)
	if err != nil {
		return nil, err
	}
	e, err := endpointOf(op, k, end)
	if err != nil {
		return nil, err
	}
	return o.build(op, s, e, openStart, openEnd)
}

func endpointOf(op string, k domain.Kind, raw any) (*domain.Value, error) {
	if raw == nil {
		return nil, nil
	}
	v, ok := domain.ValueOf(raw, k)
	if !ok {
		return nil, domain.NewError(op, domain.IllegalInterval, "",
			"the value '%v' (type: %T) is of invalid type, expected a number for kind %s", raw, raw, k)
	}
	return &v, nil
}

// ParseOf parses value as an interval of kind k. See Parse.
func ParseOf(k domain.Kind, value string, emptyAsUnbounded bool) (Span, error) {
	o, err := opsOf("interval.parse", k)
	if err != nil {
		return nil, err
	}
	return o.parse(value, emptyAsUnbounded)
}
