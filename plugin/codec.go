// Package plugin packs mod-defined values into plugin-message
// packets. The packet body is opaque to the protocol core; the codec
// a channel uses is a deployment choice between both ends.
package plugin

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	thrifter "github.com/thrift-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes one channel's payload values.
type Codec interface {
	Encode(i any) ([]byte, error)
	Decode(d []byte, i any) error
}

type JsonCodec struct{}

func NewJsonCodec() JsonCodec {
	return JsonCodec{}
}

func (JsonCodec) Encode(i any) ([]byte, error) {
	return json.Marshal(i)
}

func (JsonCodec) Decode(d []byte, i any) error {
	return json.Unmarshal(d, i)
}

type MsgpackCodec struct{}

func NewMsgpackCodec() MsgpackCodec {
	return MsgpackCodec{}
}

func (MsgpackCodec) Encode(i any) ([]byte, error) {
	return msgpack.Marshal(i)
}

func (MsgpackCodec) Decode(d []byte, i any) error {
	return msgpack.Unmarshal(d, i)
}

type ProtobufCodec struct{}

func NewProtobufCodec() ProtobufCodec {
	return ProtobufCodec{}
}

func (ProtobufCodec) Encode(i any) ([]byte, error) {
	return proto.Marshal(i.(proto.Message))
}

func (ProtobufCodec) Decode(d []byte, i any) error {
	return proto.Unmarshal(d, i.(proto.Message))
}

type ThriftCodec struct{}

func NewThriftCodec() ThriftCodec {
	return ThriftCodec{}
}

func (ThriftCodec) Encode(i any) ([]byte, error) {
	return thrifter.Marshal(i)
}

func (ThriftCodec) Decode(d []byte, i any) error {
	return thrifter.Unmarshal(d, i)
}

type GobCodec struct{}

func NewGobCodec() GobCodec {
	return GobCodec{}
}

func (GobCodec) Encode(i any) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(i); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (GobCodec) Decode(d []byte, i any) error {
	return gob.NewDecoder(bytes.NewReader(d)).Decode(i)
}
