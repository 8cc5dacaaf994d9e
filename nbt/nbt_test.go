package nbt

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/timvisee/minecraft-protocol/codec"
)

func encode(t *testing.T, c Compound) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteCompound(codec.NewWriter(&buf), c); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestCompoundRoundTrip(t *testing.T) {
	c := Compound{
		Name: "root",
		Entries: []Entry{
			{Name: "byte", Value: Byte(-1)},
			{Name: "short", Value: Short(12345)},
			{Name: "int", Value: Int(-7)},
			{Name: "long", Value: Long(1 << 40)},
			{Name: "float", Value: Float(0.5)},
			{Name: "double", Value: Double(-2.25)},
			{Name: "bytes", Value: ByteArray{1, 2, 3}},
			{Name: "str", Value: String("hello")},
			{Name: "ints", Value: IntArray{1, -2, 3}},
			{Name: "longs", Value: LongArray{4, 5}},
			{Name: "list", Value: List{Elem: TagString, Items: []Value{String("a"), String("b")}}},
			{Name: "nested", Value: Compound{Entries: []Entry{
				{Name: "inner", Value: Int(9)},
			}}},
		},
	}

	data := encode(t, c)
	got, err := ReadCompound(codec.NewReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "root" || len(got.Entries) != len(c.Entries) {
		t.Fatalf("decoded %v entries, name %q", len(got.Entries), got.Name)
	}
	if v, ok := got.Get("long"); !ok || v.(Long) != 1<<40 {
		t.Fatalf("long entry: %v %v", v, ok)
	}
	nested, ok := got.Get("nested")
	if !ok {
		t.Fatalf("nested entry missing")
	}
	if v, ok := nested.(Compound).Get("inner"); !ok || v.(Int) != 9 {
		t.Fatalf("inner entry: %v %v", v, ok)
	}

	// re-encoding reproduces the source bytes exactly, entry order kept
	data2 := encode(t, got)
	if !bytes.Equal(data, data2) {
		t.Fatalf("re-encode differs:\n % x\n % x", data, data2)
	}
}

func TestCompoundConsumesExactly(t *testing.T) {
	data := encode(t, Compound{Name: "a", Entries: []Entry{{Name: "x", Value: Int(1)}}})
	trailing := append(append([]byte{}, data...), 0xde, 0xad)

	r := codec.NewReader(bytes.NewReader(trailing))
	if _, err := ReadCompound(r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.BytesRead() != len(data) {
		t.Fatalf("consumed %v bytes, want %v", r.BytesRead(), len(data))
	}
}

func TestCompoundMalformed(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		err   error
	}{
		{"empty", nil, io.ErrUnexpectedEOF},
		{"wrong root tag", []byte{TagByte, 0x00, 0x00, 0x01}, ErrExpectCompound},
		{"unknown tag id", []byte{TagCompound, 0x00, 0x00, 0x7f, 0x00, 0x00}, ErrInvalidTagType},
		{"missing end", []byte{TagCompound, 0x00, 0x00, TagByte, 0x00, 0x01, 'x', 0x05}, io.ErrUnexpectedEOF},
		{"truncated payload", []byte{TagCompound, 0x00, 0x00, TagInt, 0x00, 0x01, 'x', 0x00, 0x00}, io.ErrUnexpectedEOF},
		{"negative list length", []byte{
			TagCompound, 0x00, 0x00,
			TagList, 0x00, 0x01, 'l', TagInt, 0xff, 0xff, 0xff, 0xff,
		}, ErrNegativeLength},
	}
	for _, c := range cases {
		if _, err := ReadCompound(codec.NewReader(bytes.NewReader(c.bytes))); !errors.Is(err, c.err) {
			t.Fatalf("%v: got %v, want %v", c.name, err, c.err)
		}
	}
}

func TestListOfEndWithItems(t *testing.T) {
	data := []byte{
		TagCompound, 0x00, 0x00,
		TagList, 0x00, 0x01, 'l', TagEnd, 0x00, 0x00, 0x00, 0x02,
	}
	if _, err := ReadCompound(codec.NewReader(bytes.NewReader(data))); !errors.Is(err, ErrInvalidTagType) {
		t.Fatalf("got %v, want ErrInvalidTagType", err)
	}
}

func TestNestingDepthBound(t *testing.T) {
	var buf bytes.Buffer
	// 70 nested compounds, each holding the next under an empty name
	for i := 0; i < 70; i++ {
		if i == 0 {
			buf.Write([]byte{TagCompound, 0x00, 0x00})
		}
		buf.Write([]byte{TagCompound, 0x00, 0x00})
	}
	if _, err := ReadCompound(codec.NewReader(bytes.NewReader(buf.Bytes()))); err == nil {
		t.Fatalf("expected depth error")
	}
}
