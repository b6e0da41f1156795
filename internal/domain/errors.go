package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class.
var (
	ErrIllegalInterval   = errors.New("illegal interval")
	ErrReservedEdgeValue = errors.New("reserved edge value")
	ErrInvalidPoint      = errors.New("invalid point")
	ErrNotComparable     = errors.New("not comparable")
	ErrUnsupportedDomain = errors.New("unsupported domain")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	IllegalInterval   ErrorKind = "illegal_interval"
	ReservedEdgeValue ErrorKind = "reserved_edge_value"
	InvalidPoint      ErrorKind = "invalid_point"
	NotComparable     ErrorKind = "not_comparable"
	UnsupportedDomain ErrorKind = "unsupported_domain"
)

func (k ErrorKind) sentinel() error {
	switch k {
	case IllegalInterval:
		return ErrIllegalInterval
	case ReservedEdgeValue:
		return ErrReservedEdgeValue
	case InvalidPoint:
		return ErrInvalidPoint
	case NotComparable:
		return ErrNotComparable
	case UnsupportedDomain:
		return ErrUnsupportedDomain
	}
	return nil
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Value string // Optional: offending value
	Err   error
}

// NewError builds an *OpError whose cause is formatted from format and args.
func NewError(op string, kind ErrorKind, value string, format string, args ...any) *OpError {
	return &OpError{
		Op:    op,
		Kind:  kind,
		Value: value,
		Err:   fmt.Errorf(format, args...),
	}
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Value != "" {
		base += fmt.Sprintf(" (value=%s)", e.Value)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel error of the receiver's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// IsKind helps callers classify errors without comparing sentinels.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
