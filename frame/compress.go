package frame

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"io"

	"github.com/golang/snappy"
)

type CompressType int8

const (
	CompressNone   CompressType = iota
	CompressZlib   CompressType = 1 // vanilla wire format
	CompressGzip   CompressType = 2
	CompressSnappy CompressType = 3
	CompressMax    CompressType = 4
)

func IsValidCompressType(typ CompressType) bool {
	if typ < CompressNone || typ >= CompressMax {
		return false
	}
	return true
}

var ErrUnknownCompressType = errors.New("frame: unknown compress type")

type Compressor interface {
	Compress([]byte) ([]byte, error)
}

type Decompressor interface {
	Decompress([]byte) ([]byte, error)
}

func newCompressor(typ CompressType) (Compressor, error) {
	switch typ {
	case CompressZlib:
		return newZlibCompressor(), nil
	case CompressGzip:
		return newGzipCompressor(), nil
	case CompressSnappy:
		return snappyCompressor{}, nil
	default:
		return nil, ErrUnknownCompressType
	}
}

func newDecompressor(typ CompressType) (Decompressor, error) {
	switch typ {
	case CompressZlib:
		return &zlibDecompressor{}, nil
	case CompressGzip:
		return &gzipDecompressor{}, nil
	case CompressSnappy:
		return snappyDecompressor{}, nil
	default:
		return nil, ErrUnknownCompressType
	}
}

type zlibCompressor struct {
	writer      *zlib.Writer
	writeBuffer bytes.Buffer
}

func newZlibCompressor() *zlibCompressor {
	c := &zlibCompressor{}
	c.writer = zlib.NewWriter(&c.writeBuffer)
	return c
}

func (c *zlibCompressor) Compress(data []byte) ([]byte, error) {
	c.writeBuffer.Reset()
	c.writer.Reset(&c.writeBuffer)
	if _, err := c.writer.Write(data); err != nil {
		return nil, err
	}
	if err := c.writer.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, c.writeBuffer.Len())
	copy(out, c.writeBuffer.Bytes())
	return out, nil
}

type zlibDecompressor struct{}

func (zlibDecompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

type gzipCompressor struct {
	writer      *gzip.Writer
	writeBuffer bytes.Buffer
}

func newGzipCompressor() *gzipCompressor {
	c := &gzipCompressor{}
	c.writer = gzip.NewWriter(&c.writeBuffer)
	return c
}

func (c *gzipCompressor) Compress(data []byte) ([]byte, error) {
	c.writeBuffer.Reset()
	c.writer.Reset(&c.writeBuffer)
	if _, err := c.writer.Write(data); err != nil {
		return nil, err
	}
	if err := c.writer.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, c.writeBuffer.Len())
	copy(out, c.writeBuffer.Bytes())
	return out, nil
}

type gzipDecompressor struct{}

func (gzipDecompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

type snappyCompressor struct{}

func (snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

type snappyDecompressor struct{}

func (snappyDecompressor) Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
