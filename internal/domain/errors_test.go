package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpErrorIsSentinel(t *testing.T) {
	err := NewError("interval.new", ReservedEdgeValue, "127", "reserved")

	assert.ErrorIs(t, err, ErrReservedEdgeValue)
	assert.NotErrorIs(t, err, ErrIllegalInterval)
	assert.Equal(t, "interval.new: reserved_edge_value (value=127): reserved", err.Error())

	wrapped := fmt.Errorf("parse: %w", err)
	assert.ErrorIs(t, wrapped, ErrReservedEdgeValue)
	assert.True(t, IsKind(wrapped, ReservedEdgeValue))
	assert.False(t, IsKind(wrapped, InvalidPoint))
}

func TestOpErrorUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "interval.restore", Kind: UnsupportedDomain, Err: root}

	assert.ErrorIs(t, err, root)
	assert.ErrorIs(t, err, ErrUnsupportedDomain)

	var got *OpError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, UnsupportedDomain, got.Kind)
}

func TestCheckKind(t *testing.T) {
	assert.NoError(t, CheckKind("op", KindFloat))
	err := CheckKind("op", Kind(42))
	assert.ErrorIs(t, err, ErrUnsupportedDomain)
	assert.Contains(t, err.Error(), "Kind(42)")
}

func TestIsKind_PlainError(t *testing.T) {
	assert.False(t, IsKind(errors.New("x"), IllegalInterval))
}
