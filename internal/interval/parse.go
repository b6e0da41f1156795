package interval

import (
	"fmt"
	"strings"

	"github.com/vipcxj/intervals/internal/domain"
)

// Parse parses value and returns an Interval.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), ( ,max] etc.
//
// Spaces are ignored. An empty side is unbounded and must be open. Floating
// kinds also accept inf, -inf and nan, which go through the same validation
// as any other endpoint.
//
// The parameter emptyAsUnbounded controls how an empty input string is handled:
//   - If emptyAsUnbounded == true and value == "", the result is (-∞,∞).
//   - If emptyAsUnbounded == false and value == "", an error is returned.
func Parse[T domain.Number](value string, emptyAsUnbounded bool) (Interval[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		if emptyAsUnbounded {
			return Unbounded[T](), nil
		}
		return Interval[T]{}, fmt.Errorf("empty interval notation")
	}

	// prefix operators
	switch {
	case strings.HasPrefix(s, "="):
		n, err := parseEndpoint[T](s[1:])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid =N: %w", err)
		}
		return Closed(n, n)
	case strings.HasPrefix(s, ">="):
		n, err := parseEndpoint[T](s[2:])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid >=N: %w", err)
		}
		return AtLeast(n)
	case strings.HasPrefix(s, ">"):
		n, err := parseEndpoint[T](s[1:])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid >N: %w", err)
		}
		return GreaterThan(n)
	case strings.HasPrefix(s, "<="):
		n, err := parseEndpoint[T](s[2:])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid <=N: %w", err)
		}
		return AtMost(n)
	case strings.HasPrefix(s, "<"):
		n, err := parseEndpoint[T](s[1:])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid <N: %w", err)
		}
		return LessThan(n)
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		openStart := s[0] == '('
		openEnd := s[len(s)-1] == ')'
		inner := strings.TrimSpace(s[1 : len(s)-1])
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return Interval[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		var start, end *T
		if left == "" {
			if !openStart {
				return Interval[T]{}, fmt.Errorf("infinite side must be open on left: %s", value)
			}
		} else {
			n, err := parseEndpoint[T](left)
			if err != nil {
				return Interval[T]{}, fmt.Errorf("invalid left endpoint: %w", err)
			}
			start = &n
		}
		if right == "" {
			if !openEnd {
				return Interval[T]{}, fmt.Errorf("infinite side must be open on right: %s", value)
			}
		} else {
			n, err := parseEndpoint[T](right)
			if err != nil {
				return Interval[T]{}, fmt.Errorf("invalid right endpoint: %w", err)
			}
			end = &n
		}
		return Bounded(start, end, openStart, openEnd)
	}

	// plain number
	if n, err := parseEndpoint[T](s); err == nil {
		return Closed(n, n)
	}

	return Interval[T]{}, fmt.Errorf("unrecognized interval format: %s", value)
}

// parseEndpoint parses tok as a T.
func parseEndpoint[T domain.Number](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty number")
	}
	v, err := domain.Parse(domain.KindOf[T](), tok)
	if err != nil {
		return 0, err
	}
	return domain.As[T](v), nil
}
