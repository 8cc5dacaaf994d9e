package codec

import (
	"io"
	"math"
)

// Writer encodes primitive protocol fields to an io.Writer, the exact
// inverse of Reader. Bound violations fail, they never truncate.
type Writer struct {
	w   io.Writer
	n   int
	buf [10]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// BytesWritten reports the number of bytes written so far.
func (w *Writer) BytesWritten() int {
	return w.n
}

func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	w.n += n
	return err
}

func (w *Writer) Uint8(v uint8) error {
	w.buf[0] = v
	return w.write(w.buf[:1])
}

func (w *Writer) Int8(v int8) error {
	return w.Uint8(uint8(v))
}

func (w *Writer) Bool(v bool) error {
	if v {
		return w.Uint8(1)
	}
	return w.Uint8(0)
}

func (w *Writer) Uint16(v uint16) error {
	w.buf[0] = byte(v >> 8)
	w.buf[1] = byte(v)
	return w.write(w.buf[:2])
}

func (w *Writer) Int16(v int16) error {
	return w.Uint16(uint16(v))
}

func (w *Writer) Uint32(v uint32) error {
	w.buf[0] = byte(v >> 24)
	w.buf[1] = byte(v >> 16)
	w.buf[2] = byte(v >> 8)
	w.buf[3] = byte(v)
	return w.write(w.buf[:4])
}

func (w *Writer) Int32(v int32) error {
	return w.Uint32(uint32(v))
}

func (w *Writer) Uint64(v uint64) error {
	w.buf[0] = byte(v >> 56)
	w.buf[1] = byte(v >> 48)
	w.buf[2] = byte(v >> 40)
	w.buf[3] = byte(v >> 32)
	w.buf[4] = byte(v >> 24)
	w.buf[5] = byte(v >> 16)
	w.buf[6] = byte(v >> 8)
	w.buf[7] = byte(v)
	return w.write(w.buf[:8])
}

func (w *Writer) Int64(v int64) error {
	return w.Uint64(uint64(v))
}

func (w *Writer) Float32(v float32) error {
	return w.Uint32(math.Float32bits(v))
}

func (w *Writer) Float64(v float64) error {
	return w.Uint64(math.Float64bits(v))
}

// VarInt32 writes the canonical minimal LEB128 encoding of v.
func (w *Writer) VarInt32(v int32) error {
	u := uint32(v)
	i := 0
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		w.buf[i] = b
		i++
		if u == 0 {
			return w.write(w.buf[:i])
		}
	}
}

func (w *Writer) VarInt64(v int64) error {
	u := uint64(v)
	i := 0
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		w.buf[i] = b
		i++
		if u == 0 {
			return w.write(w.buf[:i])
		}
	}
}

// Bytes writes b verbatim.
func (w *Writer) Bytes(b []byte) error {
	return w.write(b)
}

// ByteArray writes a VarInt32 length prefix followed by b.
func (w *Writer) ByteArray(b []byte) error {
	if err := w.VarInt32(int32(len(b))); err != nil {
		return err
	}
	return w.write(b)
}

// String writes a VarInt32 byte-length prefix followed by the UTF-8
// bytes of s, failing with a LimitError when s exceeds max bytes.
func (w *Writer) String(s string, max int) error {
	if len(s) > max {
		return &LimitError{Limit: max, Got: len(s)}
	}
	if err := w.VarInt32(int32(len(s))); err != nil {
		return err
	}
	return w.write([]byte(s))
}

// StringList writes a VarInt32 element count followed by each string.
func (w *Writer) StringList(list []string, maxEach int) error {
	if err := w.VarInt32(int32(len(list))); err != nil {
		return err
	}
	for _, s := range list {
		if err := w.String(s, maxEach); err != nil {
			return err
		}
	}
	return nil
}
