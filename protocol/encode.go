package protocol

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/timvisee/minecraft-protocol/chat"
	"github.com/timvisee/minecraft-protocol/codec"
	"github.com/timvisee/minecraft-protocol/nbt"
)

// Encode writes the schema's fields in declared order, the exact
// inverse of Decode. A value violating a declared bound fails the
// whole packet; nothing is ever truncated to fit.
func (s *Schema) Encode(w *codec.Writer, pkt Packet) error {
	v := reflect.ValueOf(pkt)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.Errorf("protocol: encode source for %v is nil", s.name)
		}
		v = v.Elem()
	}
	if v.Type() != s.typ {
		return errors.Errorf("protocol: encode source for %v must be %v", s.name, s.typ)
	}
	for _, f := range s.fields {
		if err := encodeField(w, f, v.Field(f.index)); err != nil {
			return &FieldError{Packet: s.name, Field: f.Name, Err: err}
		}
	}
	return nil
}

func encodeField(w *codec.Writer, f Field, fv reflect.Value) error {
	switch f.Kind {
	case KindBool:
		return w.Bool(fv.Bool())
	case KindInt8:
		return w.Int8(int8(fv.Int()))
	case KindUint8:
		return w.Uint8(uint8(fv.Uint()))
	case KindInt16:
		return w.Int16(int16(fv.Int()))
	case KindUint16:
		return w.Uint16(uint16(fv.Uint()))
	case KindInt32:
		return w.Int32(int32(fv.Int()))
	case KindUint32:
		return w.Uint32(uint32(fv.Uint()))
	case KindInt64:
		return w.Int64(fv.Int())
	case KindUint64:
		return w.Uint64(fv.Uint())
	case KindFloat32:
		return w.Float32(float32(fv.Float()))
	case KindFloat64:
		return w.Float64(fv.Float())
	case KindVarInt32:
		return w.VarInt32(int32(fv.Int()))
	case KindVarInt64:
		return w.VarInt64(fv.Int())
	case KindString:
		return w.String(fv.String(), f.Max)
	case KindStringList:
		return w.StringList(fv.Interface().([]string), f.Max)
	case KindByteArray:
		return w.ByteArray(fv.Bytes())
	case KindRestBytes:
		return w.Bytes(fv.Bytes())
	case KindCompound:
		return nbt.WriteCompound(w, fv.Interface().(nbt.Compound))
	case KindMessage:
		raw, err := fv.Interface().(chat.Message).MarshalJSONString()
		if err != nil {
			return err
		}
		return w.String(raw, f.Max)
	default:
		return errors.Errorf("protocol: unhandled field kind %v", f.Kind)
	}
}
