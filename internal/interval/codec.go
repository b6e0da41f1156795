package interval

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/vipcxj/intervals/internal/domain"
)

// tuple is the persisted form of an interval. The field order is part of the
// wire format: kind, start, end, open start, open end. Unbounded sides are
// written as null.
type tuple[T domain.Number] struct {
	_         struct{} `cbor:",toarray"`
	Kind      string
	Start     *T
	End       *T
	OpenStart bool
	OpenEnd   bool
}

func (i Interval[T]) tuple() tuple[T] {
	t := tuple[T]{
		Kind:      i.Kind().String(),
		OpenStart: i.openStart,
		OpenEnd:   i.openEnd,
	}
	if !i.StartUnbounded() {
		s := i.start
		t.Start = &s
	}
	if !i.EndUnbounded() {
		e := i.end
		t.End = &e
	}
	return t
}

func (t tuple[T]) restore() (Interval[T], error) {
	k, err := domain.KindString(t.Kind)
	if err != nil {
		return Interval[T]{}, &domain.OpError{
			Op:    "interval.restore",
			Kind:  domain.UnsupportedDomain,
			Value: t.Kind,
			Err:   err,
		}
	}
	return Restore(k, t.Start, t.End, t.OpenStart, t.OpenEnd)
}

// MarshalCBOR encodes i as a five element CBOR array.
func (i Interval[T]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(i.tuple())
}

// UnmarshalCBOR restores i from a five element CBOR array, validating it like New.
func (i *Interval[T]) UnmarshalCBOR(data []byte) error {
	var t tuple[T]
	if err := cbor.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode interval: %w", err)
	}
	iv, err := t.restore()
	if err != nil {
		return err
	}
	*i = iv
	return nil
}

func (i Interval[T]) MarshalBinary() ([]byte, error) {
	return i.MarshalCBOR()
}

func (i *Interval[T]) UnmarshalBinary(data []byte) error {
	return i.UnmarshalCBOR(data)
}

// MarshalJSON encodes i as ["kind",start,end,openStart,openEnd].
func (i Interval[T]) MarshalJSON() ([]byte, error) {
	t := i.tuple()
	return json.Marshal([]any{t.Kind, t.Start, t.End, t.OpenStart, t.OpenEnd})
}

func (i *Interval[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode interval: %w", err)
	}
	var t tuple[T]
	targets := []any{&t.Kind, &t.Start, &t.End, &t.OpenStart, &t.OpenEnd}
	if len(raw) != len(targets) {
		return fmt.Errorf("decode interval: want %d fields, got %d", len(targets), len(raw))
	}
	for n, target := range targets {
		if err := json.Unmarshal(raw[n], target); err != nil {
			return fmt.Errorf("decode interval field %d: %w", n, err)
		}
	}
	iv, err := t.restore()
	if err != nil {
		return err
	}
	*i = iv
	return nil
}

// DecodeCBOR restores an interval of whichever kind the data names.
func DecodeCBOR(data []byte) (Span, error) {
	var fields []cbor.RawMessage
	if err := cbor.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode interval: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("decode interval: empty tuple")
	}
	var kind string
	if err := cbor.Unmarshal(fields[0], &kind); err != nil {
		return nil, fmt.Errorf("decode interval kind: %w", err)
	}
	o, err := opsNamed(kind)
	if err != nil {
		return nil, err
	}
	return o.decodeCBOR(data)
}

// DecodeJSON restores an interval of whichever kind the data names.
func DecodeJSON(data []byte) (Span, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode interval: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("decode interval: empty tuple")
	}
	var kind string
	if err := json.Unmarshal(fields[0], &kind); err != nil {
		return nil, fmt.Errorf("decode interval kind: %w", err)
	}
	o, err := opsNamed(kind)
	if err != nil {
		return nil, err
	}
	return o.decodeJSON(data)
}

func opsNamed(kind string) (ops, error) {
	k, err := domain.KindString(kind)
	if err != nil {
		return ops{}, &domain.OpError{
			Op:    "interval.decode",
			Kind:  domain.UnsupportedDomain,
			Value: kind,
			Err:   err,
		}
	}
	return opsOf("interval.decode", k)
}
