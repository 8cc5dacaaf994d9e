package protocol

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/timvisee/minecraft-protocol/chat"
	"github.com/timvisee/minecraft-protocol/nbt"
)

// FieldKind selects the wire encoding of one schema field.
type FieldKind uint8

const (
	KindBool       FieldKind = iota // single byte, strictly 0 or 1
	KindInt8                        // fixed width, big-endian
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindVarInt32   // canonical LEB128
	KindVarInt64
	KindString     // varint byte-length prefix, bounded
	KindStringList // varint count, bounded elements
	KindByteArray  // varint length prefix
	KindRestBytes  // remainder of the payload, final field only
	KindCompound   // embedded nbt tree
	KindMessage    // chat json document as a bounded string
)

// DefaultMaxStringLength bounds string fields that carry no explicit
// max modifier. The bound is on the UTF-8 byte length.
const DefaultMaxStringLength = 32767

// Field is one step of a packet's wire layout.
type Field struct {
	Name string
	Kind FieldKind
	Max  int // byte-length bound for string kinds, per element for lists

	index int
}

// Schema is the compiled, ordered wire layout of one packet struct.
// Schemas are immutable once built.
type Schema struct {
	name   string
	typ    reflect.Type
	fields []Field
}

func (s *Schema) Name() string {
	return s.name
}

// Fields returns a copy of the ordered field layout.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// New allocates a zero value of the packet type, as a pointer.
func (s *Schema) New() Packet {
	return reflect.New(s.typ).Interface()
}

var (
	typeCompound   = reflect.TypeOf(nbt.Compound{})
	typeMessage    = reflect.TypeOf(chat.Message{})
	typeBytes      = reflect.TypeOf([]byte(nil))
	typeStringList = reflect.TypeOf([]string(nil))
)

// SchemaOf compiles the wire layout of a packet struct from its field
// order and `mc` tags. The prototype may be a struct or a pointer to
// one. Layout mistakes (unsupported field types, a rest blob that is
// not the final field, modifiers on the wrong kind) fail here, at
// registry build time, never per message.
func SchemaOf(prototype Packet) (*Schema, error) {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, errors.Errorf("protocol: packet prototype %T is not a struct", prototype)
	}

	s := &Schema{name: t.Name(), typ: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			return nil, errors.Errorf("protocol: %v.%v: wire fields must be exported", s.name, sf.Name)
		}
		f, err := compileField(sf)
		if err != nil {
			return nil, errors.Wrapf(err, "protocol: %v.%v", s.name, sf.Name)
		}
		f.index = i
		if len(s.fields) > 0 && s.fields[len(s.fields)-1].Kind == KindRestBytes {
			return nil, errors.Errorf("protocol: %v.%v: rest blob must be the final field", s.name, sf.Name)
		}
		s.fields = append(s.fields, f)
	}
	return s, nil
}

type tagModifiers struct {
	varint bool
	rest   bool
	max    int
	hasMax bool
}

func parseTag(tag string) (tagModifiers, error) {
	var m tagModifiers
	if tag == "" {
		return m, nil
	}
	for _, part := range strings.Split(tag, ",") {
		switch {
		case part == "varint":
			m.varint = true
		case part == "rest":
			m.rest = true
		case part == "string":
			// explicit default, nothing to set
		case strings.HasPrefix(part, "max="):
			n, err := strconv.Atoi(part[len("max="):])
			if err != nil || n < 0 {
				return m, errors.Errorf("invalid max modifier %q", part)
			}
			m.max = n
			m.hasMax = true
		default:
			return m, errors.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}

func compileField(sf reflect.StructField) (Field, error) {
	mods, err := parseTag(sf.Tag.Get("mc"))
	if err != nil {
		return Field{}, err
	}

	f := Field{Name: sf.Name}
	ft := sf.Type
	switch {
	case ft == typeCompound:
		f.Kind = KindCompound
	case ft == typeMessage:
		f.Kind = KindMessage
		f.Max = chat.MaxLength
	case ft == typeBytes:
		if mods.rest {
			f.Kind = KindRestBytes
		} else {
			f.Kind = KindByteArray
		}
	case ft == typeStringList:
		f.Kind = KindStringList
		f.Max = DefaultMaxStringLength
	default:
		switch ft.Kind() {
		case reflect.Bool:
			f.Kind = KindBool
		case reflect.Int8:
			f.Kind = KindInt8
		case reflect.Uint8:
			f.Kind = KindUint8
		case reflect.Int16:
			f.Kind = KindInt16
		case reflect.Uint16:
			f.Kind = KindUint16
		case reflect.Int32:
			f.Kind = KindInt32
		case reflect.Uint32:
			f.Kind = KindUint32
		case reflect.Int64:
			f.Kind = KindInt64
		case reflect.Uint64:
			f.Kind = KindUint64
		case reflect.Float32:
			f.Kind = KindFloat32
		case reflect.Float64:
			f.Kind = KindFloat64
		case reflect.String:
			f.Kind = KindString
			f.Max = DefaultMaxStringLength
		default:
			return Field{}, errors.Errorf("unsupported wire type %v", ft)
		}
	}

	if mods.varint {
		switch f.Kind {
		case KindInt32:
			f.Kind = KindVarInt32
		case KindInt64:
			f.Kind = KindVarInt64
		default:
			return Field{}, errors.Errorf("varint modifier requires int32 or int64, have %v", ft)
		}
	}
	if mods.rest && f.Kind != KindRestBytes {
		return Field{}, errors.Errorf("rest modifier requires []byte, have %v", ft)
	}
	if mods.hasMax {
		switch f.Kind {
		case KindString, KindStringList, KindMessage:
			f.Max = mods.max
		default:
			return Field{}, errors.Errorf("max modifier requires a string kind, have %v", ft)
		}
	}
	return f, nil
}
