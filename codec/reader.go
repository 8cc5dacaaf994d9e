package codec

import (
	"io"
	"math"
	"unicode/utf8"
)

// Reader decodes primitive protocol fields from an io.Reader. All
// multi-byte fixed-width values are big-endian. Every read either
// consumes exactly the bytes the field requires or fails; a field cut
// short by EOF fails with io.ErrUnexpectedEOF, never a partial value.
type Reader struct {
	r   io.Reader
	n   int
	buf [8]byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// BytesRead reports the number of bytes consumed so far.
func (r *Reader) BytesRead() int {
	return r.n
}

func (r *Reader) readFull(b []byte) error {
	n, err := io.ReadFull(r.r, b)
	r.n += n
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (r *Reader) Uint8() (uint8, error) {
	if err := r.readFull(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *Reader) Bool() (bool, error) {
	v, err := r.Uint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

func (r *Reader) Uint16() (uint16, error) {
	if err := r.readFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return uint16(r.buf[0])<<8 | uint16(r.buf[1]), nil
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.readFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return uint32(r.buf[0])<<24 | uint32(r.buf[1])<<16 | uint32(r.buf[2])<<8 | uint32(r.buf[3]), nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Uint64() (uint64, error) {
	if err := r.readFull(r.buf[:8]); err != nil {
		return 0, err
	}
	return uint64(r.buf[0])<<56 | uint64(r.buf[1])<<48 | uint64(r.buf[2])<<40 | uint64(r.buf[3])<<32 |
		uint64(r.buf[4])<<24 | uint64(r.buf[5])<<16 | uint64(r.buf[6])<<8 | uint64(r.buf[7]), nil
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// VarInt32 decodes a LEB128 variable-length integer of at most 5
// bytes. Exactly one encoding per value is accepted: an encoding
// longer than the canonical minimum fails with ErrNonCanonicalVarInt.
func (r *Reader) VarInt32() (int32, error) {
	var value uint32
	for i := 0; ; i++ {
		if i == 5 {
			return 0, ErrVarIntTooLong
		}
		b, err := r.Uint8()
		if err != nil {
			return 0, err
		}
		group := b & 0x7f
		if i == 4 && group > 0x0f {
			return 0, ErrVarIntTooLong
		}
		value |= uint32(group) << (7 * i)
		if b&0x80 == 0 {
			if i > 0 && group == 0 {
				return 0, ErrNonCanonicalVarInt
			}
			return int32(value), nil
		}
	}
}

// VarInt64 is VarInt32 widened to 64 bits, at most 10 bytes.
func (r *Reader) VarInt64() (int64, error) {
	var value uint64
	for i := 0; ; i++ {
		if i == 10 {
			return 0, ErrVarIntTooLong
		}
		b, err := r.Uint8()
		if err != nil {
			return 0, err
		}
		group := b & 0x7f
		if i == 9 && group > 0x01 {
			return 0, ErrVarIntTooLong
		}
		value |= uint64(group) << (7 * i)
		if b&0x80 == 0 {
			if i > 0 && group == 0 {
				return 0, ErrNonCanonicalVarInt
			}
			return int64(value), nil
		}
	}
}

// Bytes reads exactly n bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b := make([]byte, n)
	if err := r.readFull(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ByteArray reads a VarInt32 length prefix followed by that many bytes.
func (r *Reader) ByteArray() ([]byte, error) {
	n, err := r.VarInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	return r.Bytes(int(n))
}

// RestBytes reads the remainder of the source until EOF.
func (r *Reader) RestBytes() ([]byte, error) {
	b, err := io.ReadAll(r.r)
	r.n += len(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// String reads a VarInt32 byte-length prefix followed by UTF-8 bytes.
// The length must not exceed max, and the bytes must be valid UTF-8.
func (r *Reader) String(max int) (string, error) {
	n, err := r.VarInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	if int(n) > max {
		return "", &LimitError{Limit: max, Got: int(n)}
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// StringList reads a VarInt32 element count followed by that many
// strings, each bounded by maxEach.
func (r *Reader) StringList(maxEach int) ([]string, error) {
	n, err := r.VarInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeLength
	}
	capHint := int(n)
	if capHint > 16 {
		capHint = 16
	}
	list := make([]string, 0, capHint)
	for i := int32(0); i < n; i++ {
		s, err := r.String(maxEach)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
