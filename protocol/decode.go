package protocol

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/timvisee/minecraft-protocol/chat"
	"github.com/timvisee/minecraft-protocol/codec"
	"github.com/timvisee/minecraft-protocol/nbt"
)

// Decode reads the schema's fields strictly in declared order into
// pkt, which must be a pointer to the schema's packet struct. The
// first field failure aborts the whole packet; pkt must then be
// discarded. Bytes consumed are tracked by the reader.
func (s *Schema) Decode(r *codec.Reader, pkt Packet) error {
	v := reflect.ValueOf(pkt)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Type() != s.typ {
		return errors.Errorf("protocol: decode target for %v must be a non-nil *%v", s.name, s.typ)
	}
	sv := v.Elem()
	for _, f := range s.fields {
		if err := decodeField(r, f, sv.Field(f.index)); err != nil {
			return &FieldError{Packet: s.name, Field: f.Name, Err: err}
		}
	}
	return nil
}

func decodeField(r *codec.Reader, f Field, fv reflect.Value) error {
	switch f.Kind {
	case KindBool:
		v, err := r.Bool()
		if err != nil {
			return err
		}
		fv.SetBool(v)
	case KindInt8:
		v, err := r.Int8()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case KindUint8:
		v, err := r.Uint8()
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case KindInt16:
		v, err := r.Int16()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case KindUint16:
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case KindInt32:
		v, err := r.Int32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case KindUint32:
		v, err := r.Uint32()
		if err != nil {
			return err
		}
		fv.SetUint(uint64(v))
	case KindInt64:
		v, err := r.Int64()
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case KindUint64:
		v, err := r.Uint64()
		if err != nil {
			return err
		}
		fv.SetUint(v)
	case KindFloat32:
		v, err := r.Float32()
		if err != nil {
			return err
		}
		fv.SetFloat(float64(v))
	case KindFloat64:
		v, err := r.Float64()
		if err != nil {
			return err
		}
		fv.SetFloat(v)
	case KindVarInt32:
		v, err := r.VarInt32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(v))
	case KindVarInt64:
		v, err := r.VarInt64()
		if err != nil {
			return err
		}
		fv.SetInt(v)
	case KindString:
		v, err := r.String(f.Max)
		if err != nil {
			return err
		}
		fv.SetString(v)
	case KindStringList:
		v, err := r.StringList(f.Max)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(v))
	case KindByteArray:
		v, err := r.ByteArray()
		if err != nil {
			return err
		}
		fv.SetBytes(v)
	case KindRestBytes:
		v, err := r.RestBytes()
		if err != nil {
			return err
		}
		fv.SetBytes(v)
	case KindCompound:
		v, err := nbt.ReadCompound(r)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(v))
	case KindMessage:
		raw, err := r.String(f.Max)
		if err != nil {
			return err
		}
		m, err := chat.UnmarshalJSONString(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(m))
	default:
		return errors.Errorf("protocol: unhandled field kind %v", f.Kind)
	}
	return nil
}
