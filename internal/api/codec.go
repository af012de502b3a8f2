// Package api is the wire contract between the journal client and server:
// request and response messages, the gRPC service descriptor and the
// protobuf codec that carries the messages.
package api

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype used by JournalService calls. The
// codec replaces gRPC's default "proto" codec and hands generated messages
// back to the protobuf runtime.
const CodecName = "proto"

type protoCodec struct{}

func (protoCodec) Marshal(v any) (mem.BufferSlice, error) {
	var (
		b   []byte
		err error
	)
	switch m := v.(type) {
	case wireMessage:
		b = m.appendWire(nil)
	case proto.Message:
		b, err = proto.Marshal(m)
	default:
		err = fmt.Errorf("api: cannot marshal %T", v)
	}
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (protoCodec) Unmarshal(data mem.BufferSlice, v any) error {
	b := data.Materialize()
	switch m := v.(type) {
	case wireMessage:
		return unmarshalWire(b, m)
	case proto.Message:
		return proto.Unmarshal(b, m)
	default:
		return fmt.Errorf("api: cannot unmarshal into %T", v)
	}
}

func (protoCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodecV2(protoCodec{})
}
