package api

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// wireMessage is implemented by every JournalService message. Field numbers
// follow weekjournal.proto.
type wireMessage interface {
	appendWire(b []byte) []byte
	consumeField(num protowire.Number, typ protowire.Type, b []byte) (int, error)
}

var errWireType = errors.New("unexpected wire type")

func unmarshalWire(b []byte, m wireMessage) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := m.consumeField(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		b = b[n:]
	}
	return nil
}

// skipField consumes a field this message does not know.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

// appendMessage writes m length-prefixed; callers skip nil fields.
func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// appendTime writes t as a google.protobuf.Timestamp. The zero time is
// left out.
func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	var ts []byte
	if s := t.Unix(); s != 0 {
		ts = protowire.AppendTag(ts, 1, protowire.VarintType)
		ts = protowire.AppendVarint(ts, uint64(s))
	}
	if ns := t.Nanosecond(); ns != 0 {
		ts = protowire.AppendTag(ts, 2, protowire.VarintType)
		ts = protowire.AppendVarint(ts, uint64(ns))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, ts)
}

func consumeString(typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, errWireType
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumeBytes copies the value out, since gRPC may reuse the receive buffer.
func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return append([]byte(nil), v...), n, nil
}

func consumeBool(typ protowire.Type, b []byte) (bool, int, error) {
	if typ != protowire.VarintType {
		return false, 0, errWireType
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return false, 0, protowire.ParseError(n)
	}
	return protowire.DecodeBool(v), n, nil
}

func consumeMessage(typ protowire.Type, b []byte, m wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, unmarshalWire(v, m)
}

func consumeTime(typ protowire.Type, b []byte) (time.Time, int, error) {
	if typ != protowire.BytesType {
		return time.Time{}, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return time.Time{}, 0, protowire.ParseError(n)
	}
	var ts timestamppb.Timestamp
	if err := proto.Unmarshal(v, &ts); err != nil {
		return time.Time{}, 0, err
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, 0, err
	}
	return ts.AsTime(), n, nil
}
