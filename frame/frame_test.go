package frame

import (
	"bytes"
	"errors"
	"testing"

	"github.com/timvisee/minecraft-protocol/protocol"
	"github.com/timvisee/minecraft-protocol/protocol/version/v1_17_1"
)

func TestFrameRoundTripPlain(t *testing.T) {
	var wire bytes.Buffer
	w, err := NewWriter(&wire)
	if err != nil {
		t.Fatal(err)
	}
	payload := []byte{1, 2, 3, 4}
	if err := w.WriteFrame(0x4B, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := NewReader(&wire)
	if err != nil {
		t.Fatal(err)
	}
	op, got, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if op != 0x4B || !bytes.Equal(got, payload) {
		t.Fatalf("got 0x%02X % x", uint8(op), got)
	}
}

func TestFrameRoundTripCompressed(t *testing.T) {
	for _, typ := range []CompressType{CompressZlib, CompressGzip, CompressSnappy} {
		var wire bytes.Buffer
		w, err := NewWriter(&wire, WithCompressType(typ), WithCompressThreshold(16))
		if err != nil {
			t.Fatalf("type %v: %v", typ, err)
		}

		small := []byte{9}
		big := bytes.Repeat([]byte("abcdefgh"), 64)
		if err := w.WriteFrame(0x01, small); err != nil {
			t.Fatalf("type %v small: %v", typ, err)
		}
		if err := w.WriteFrame(0x02, big); err != nil {
			t.Fatalf("type %v big: %v", typ, err)
		}

		r, err := NewReader(&wire, WithCompressType(typ))
		if err != nil {
			t.Fatal(err)
		}
		op, got, err := r.ReadFrame()
		if err != nil || op != 0x01 || !bytes.Equal(got, small) {
			t.Fatalf("type %v small: 0x%02X % x %v", typ, uint8(op), got, err)
		}
		op, got, err = r.ReadFrame()
		if err != nil || op != 0x02 || !bytes.Equal(got, big) {
			t.Fatalf("type %v big: 0x%02X len=%v %v", typ, uint8(op), len(got), err)
		}
	}
}

func TestFrameTooLarge(t *testing.T) {
	var wire bytes.Buffer
	w, err := NewWriter(&wire, WithMaxFrameLength(8))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFrame(0x00, bytes.Repeat([]byte{0}, 64)); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("write: got %v", err)
	}

	// a frame declaring an oversized length is rejected before the
	// body is read
	wire.Reset()
	wire.Write([]byte{0xff, 0xff, 0x7f})
	r, err := NewReader(&wire, WithMaxFrameLength(8))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.ReadFrame(); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("read: got %v", err)
	}
}

func TestFramePacketRoundTrip(t *testing.T) {
	var wire bytes.Buffer
	w, err := NewWriter(&wire, WithCompressType(CompressZlib), WithCompressThreshold(1))
	if err != nil {
		t.Fatal(err)
	}
	in := &v1_17_1.SpawnPosition{Position: 77, Angle: -45}
	if err := w.WritePacket(v1_17_1.Game, protocol.ClientBound, in); err != nil {
		t.Fatalf("write packet: %v", err)
	}

	r, err := NewReader(&wire, WithCompressType(CompressZlib))
	if err != nil {
		t.Fatal(err)
	}
	pkt, err := r.ReadPacket(v1_17_1.Game, protocol.ClientBound)
	if err != nil {
		t.Fatalf("read packet: %v", err)
	}
	out, ok := pkt.(*v1_17_1.SpawnPosition)
	if !ok || out.Position != 77 || out.Angle != -45 {
		t.Fatalf("got %#v", pkt)
	}
}

func TestInvalidCompressType(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, WithCompressType(CompressMax)); !errors.Is(err, ErrUnknownCompressType) {
		t.Fatalf("got %v", err)
	}
	if IsValidCompressType(CompressMax) || !IsValidCompressType(CompressSnappy) {
		t.Fatalf("compress type validity")
	}
}
