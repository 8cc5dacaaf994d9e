// Package frame is the length-delimited transport framing around the
// packet codec: a varint frame length, an optional compression
// wrapper, then the opcode varint and payload. The codec core never
// sees frames; callers hand it the opcode and payload this package
// separates.
package frame

import (
	"bytes"
	"errors"
	"io"

	"github.com/timvisee/minecraft-protocol/codec"
	"github.com/timvisee/minecraft-protocol/protocol"
)

var (
	ErrFrameTooLarge  = errors.New("frame: frame exceeds maximum length")
	ErrFrameCorrupted = errors.New("frame: declared and actual body length differ")
)

// Writer frames packet bodies onto an io.Writer. Not safe for
// concurrent use; each connection owns one.
type Writer struct {
	w       io.Writer
	options Options
	comp    Compressor
}

func NewWriter(w io.Writer, options ...Option) (*Writer, error) {
	fw := &Writer{w: w, options: newOptions(options...)}
	if fw.options.CompressType != CompressNone {
		c, err := newCompressor(fw.options.CompressType)
		if err != nil {
			return nil, err
		}
		fw.comp = c
	}
	return fw, nil
}

// WriteFrame frames one packet body. The body starts with the opcode
// varint; with compression enabled bodies under the threshold travel
// raw inside the compressed format, marked by a zero length.
func (fw *Writer) WriteFrame(op protocol.Opcode, payload []byte) error {
	var body bytes.Buffer
	bw := codec.NewWriter(&body)
	if err := bw.VarInt32(int32(op)); err != nil {
		return err
	}
	if err := bw.Bytes(payload); err != nil {
		return err
	}

	var inner bytes.Buffer
	iw := codec.NewWriter(&inner)
	if fw.comp != nil {
		if body.Len() >= fw.options.CompressThreshold {
			compressed, err := fw.comp.Compress(body.Bytes())
			if err != nil {
				return err
			}
			if err := iw.VarInt32(int32(body.Len())); err != nil {
				return err
			}
			if err := iw.Bytes(compressed); err != nil {
				return err
			}
		} else {
			if err := iw.VarInt32(0); err != nil {
				return err
			}
			if err := iw.Bytes(body.Bytes()); err != nil {
				return err
			}
		}
	} else {
		if err := iw.Bytes(body.Bytes()); err != nil {
			return err
		}
	}

	if inner.Len() > fw.options.MaxFrameLength {
		return ErrFrameTooLarge
	}
	ow := codec.NewWriter(fw.w)
	if err := ow.VarInt32(int32(inner.Len())); err != nil {
		return err
	}
	return ow.Bytes(inner.Bytes())
}

// WritePacket encodes a packet through the epoch registry and frames
// it under its opcode.
func (fw *Writer) WritePacket(reg *protocol.Registry, dir protocol.Direction, pkt protocol.Packet) error {
	var payload bytes.Buffer
	op, err := reg.Encode(dir, pkt, &payload)
	if err != nil {
		return err
	}
	return fw.WriteFrame(op, payload.Bytes())
}

// Reader splits frames off an io.Reader. Not safe for concurrent use.
type Reader struct {
	r       *codec.Reader
	options Options
	decomp  Decompressor
}

func NewReader(r io.Reader, options ...Option) (*Reader, error) {
	fr := &Reader{r: codec.NewReader(r), options: newOptions(options...)}
	if fr.options.CompressType != CompressNone {
		d, err := newDecompressor(fr.options.CompressType)
		if err != nil {
			return nil, err
		}
		fr.decomp = d
	}
	return fr, nil
}

// ReadFrame returns the next frame's opcode and payload. The payload
// slice is owned by the caller.
func (fr *Reader) ReadFrame() (protocol.Opcode, []byte, error) {
	length, err := fr.r.VarInt32()
	if err != nil {
		return 0, nil, err
	}
	if length < 0 || int(length) > fr.options.MaxFrameLength {
		return 0, nil, ErrFrameTooLarge
	}
	data, err := fr.r.Bytes(int(length))
	if err != nil {
		return 0, nil, err
	}

	body := data
	if fr.decomp != nil {
		br := codec.NewReader(bytes.NewReader(data))
		dataLen, err := br.VarInt32()
		if err != nil {
			return 0, nil, err
		}
		rest := data[br.BytesRead():]
		if dataLen > 0 {
			if int(dataLen) > fr.options.MaxFrameLength {
				return 0, nil, ErrFrameTooLarge
			}
			body, err = fr.decomp.Decompress(rest)
			if err != nil {
				return 0, nil, err
			}
			if len(body) != int(dataLen) {
				return 0, nil, ErrFrameCorrupted
			}
		} else {
			body = rest
		}
	}

	br := codec.NewReader(bytes.NewReader(body))
	op, err := br.VarInt32()
	if err != nil {
		return 0, nil, err
	}
	if op < 0 || op > 0xff {
		return 0, nil, ErrFrameCorrupted
	}
	return protocol.Opcode(op), body[br.BytesRead():], nil
}

// ReadPacket reads one frame and decodes it through the epoch
// registry.
func (fr *Reader) ReadPacket(reg *protocol.Registry, dir protocol.Direction) (protocol.Packet, error) {
	op, payload, err := fr.ReadFrame()
	if err != nil {
		return nil, err
	}
	return reg.Decode(dir, op, bytes.NewReader(payload))
}
