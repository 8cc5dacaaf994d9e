// Package nbt reads and writes the named-binary-tag tree structure
// embedded in packet payloads as compound fields. The tree is kept as
// an ordered list of entries so re-encoding a decoded compound
// reproduces the source bytes exactly.
package nbt

import (
	"errors"
	"fmt"

	"github.com/timvisee/minecraft-protocol/codec"
)

const (
	TagEnd       byte = 0x00
	TagByte      byte = 0x01
	TagShort     byte = 0x02
	TagInt       byte = 0x03
	TagLong      byte = 0x04
	TagFloat     byte = 0x05
	TagDouble    byte = 0x06
	TagByteArray byte = 0x07
	TagString    byte = 0x08
	TagList      byte = 0x09
	TagCompound  byte = 0x0a
	TagIntArray  byte = 0x0b
	TagLongArray byte = 0x0c
)

var (
	ErrInvalidTagType = errors.New("nbt: invalid tag type")
	ErrExpectCompound = errors.New("nbt: root tag is not a compound")
	ErrNegativeLength = errors.New("nbt: negative length")
)

// maxDepth bounds list/compound nesting so a malformed payload cannot
// recurse without limit.
const maxDepth = 64

// Value is one node of the tag tree.
type Value interface {
	tagType() byte
}

type Byte int8
type Short int16
type Int int32
type Long int64
type Float float32
type Double float64
type ByteArray []byte
type String string

type IntArray []int32
type LongArray []int64

// List holds payloads of a single element tag type. An empty list may
// carry TagEnd as its element type.
type List struct {
	Elem  byte
	Items []Value
}

// Entry is one named child of a compound, in wire order.
type Entry struct {
	Name  string
	Value Value
}

// Compound is an ordered sequence of named entries. The root compound
// embedded in a packet additionally carries its own name.
type Compound struct {
	Name    string
	Entries []Entry
}

func (Byte) tagType() byte      { return TagByte }
func (Short) tagType() byte     { return TagShort }
func (Int) tagType() byte       { return TagInt }
func (Long) tagType() byte      { return TagLong }
func (Float) tagType() byte     { return TagFloat }
func (Double) tagType() byte    { return TagDouble }
func (ByteArray) tagType() byte { return TagByteArray }
func (String) tagType() byte    { return TagString }
func (List) tagType() byte      { return TagList }
func (Compound) tagType() byte  { return TagCompound }
func (IntArray) tagType() byte  { return TagIntArray }
func (LongArray) tagType() byte { return TagLongArray }

// Get returns the first entry value with the given name.
func (c Compound) Get(name string) (Value, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// ReadCompound decodes one embedded compound, starting at its
// TagCompound type byte and consuming through the matching TagEnd.
func ReadCompound(r *codec.Reader) (Compound, error) {
	typ, err := r.Uint8()
	if err != nil {
		return Compound{}, err
	}
	if typ != TagCompound {
		return Compound{}, ErrExpectCompound
	}
	name, err := readName(r)
	if err != nil {
		return Compound{}, err
	}
	entries, err := readEntries(r, 0)
	if err != nil {
		return Compound{}, err
	}
	return Compound{Name: name, Entries: entries}, nil
}

// WriteCompound is the inverse of ReadCompound.
func WriteCompound(w *codec.Writer, c Compound) error {
	if err := w.Uint8(TagCompound); err != nil {
		return err
	}
	if err := writeName(w, c.Name); err != nil {
		return err
	}
	return writeEntries(w, c.Entries)
}

func readName(r *codec.Reader) (string, error) {
	n, err := r.Uint16()
	if err != nil {
		return "", err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeName(w *codec.Writer, name string) error {
	if err := w.Uint16(uint16(len(name))); err != nil {
		return err
	}
	return w.Bytes([]byte(name))
}

func readEntries(r *codec.Reader, depth int) ([]Entry, error) {
	if depth >= maxDepth {
		return nil, fmt.Errorf("nbt: nesting deeper than %v", maxDepth)
	}
	var entries []Entry
	for {
		typ, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		if typ == TagEnd {
			return entries, nil
		}
		name, err := readName(r)
		if err != nil {
			return nil, err
		}
		v, err := readPayload(r, typ, depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Value: v})
	}
}

func writeEntries(w *codec.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := w.Uint8(e.Value.tagType()); err != nil {
			return err
		}
		if err := writeName(w, e.Name); err != nil {
			return err
		}
		if err := writePayload(w, e.Value); err != nil {
			return err
		}
	}
	return w.Uint8(TagEnd)
}

func readPayload(r *codec.Reader, typ byte, depth int) (Value, error) {
	switch typ {
	case TagByte:
		v, err := r.Int8()
		return Byte(v), err
	case TagShort:
		v, err := r.Int16()
		return Short(v), err
	case TagInt:
		v, err := r.Int32()
		return Int(v), err
	case TagLong:
		v, err := r.Int64()
		return Long(v), err
	case TagFloat:
		v, err := r.Float32()
		return Float(v), err
	case TagDouble:
		v, err := r.Float64()
		return Double(v), err
	case TagByteArray:
		n, err := r.Int32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNegativeLength
		}
		b, err := r.Bytes(int(n))
		return ByteArray(b), err
	case TagString:
		s, err := readName(r)
		return String(s), err
	case TagList:
		return readList(r, depth)
	case TagCompound:
		entries, err := readEntries(r, depth+1)
		return Compound{Entries: entries}, err
	case TagIntArray:
		n, err := r.Int32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNegativeLength
		}
		a := make(IntArray, n)
		for i := range a {
			if a[i], err = r.Int32(); err != nil {
				return nil, err
			}
		}
		return a, nil
	case TagLongArray:
		n, err := r.Int32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNegativeLength
		}
		a := make(LongArray, n)
		for i := range a {
			if a[i], err = r.Int64(); err != nil {
				return nil, err
			}
		}
		return a, nil
	default:
		return nil, ErrInvalidTagType
	}
}

func readList(r *codec.Reader, depth int) (Value, error) {
	elem, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	n, err := r.Int32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if elem == TagEnd && n > 0 {
		return nil, ErrInvalidTagType
	}
	list := List{Elem: elem}
	for i := int32(0); i < n; i++ {
		v, err := readPayload(r, elem, depth+1)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, v)
	}
	return list, nil
}

func writePayload(w *codec.Writer, v Value) error {
	switch v := v.(type) {
	case Byte:
		return w.Int8(int8(v))
	case Short:
		return w.Int16(int16(v))
	case Int:
		return w.Int32(int32(v))
	case Long:
		return w.Int64(int64(v))
	case Float:
		return w.Float32(float32(v))
	case Double:
		return w.Float64(float64(v))
	case ByteArray:
		if err := w.Int32(int32(len(v))); err != nil {
			return err
		}
		return w.Bytes(v)
	case String:
		return writeName(w, string(v))
	case List:
		if err := w.Uint8(v.Elem); err != nil {
			return err
		}
		if err := w.Int32(int32(len(v.Items))); err != nil {
			return err
		}
		for _, item := range v.Items {
			if err := writePayload(w, item); err != nil {
				return err
			}
		}
		return nil
	case Compound:
		return writeEntries(w, v.Entries)
	case IntArray:
		if err := w.Int32(int32(len(v))); err != nil {
			return err
		}
		for _, i := range v {
			if err := w.Int32(i); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := w.Int32(int32(len(v))); err != nil {
			return err
		}
		for _, i := range v {
			if err := w.Int64(i); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrInvalidTagType
	}
}
