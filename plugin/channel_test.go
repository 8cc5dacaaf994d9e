package plugin

import (
	"bytes"
	"testing"

	"github.com/timvisee/minecraft-protocol/protocol"
	"github.com/timvisee/minecraft-protocol/protocol/version/v1_17_1"
)

type brandPayload struct {
	Brand   string
	Version int32
}

func TestChannelRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"json":    NewJsonCodec(),
		"msgpack": NewMsgpackCodec(),
		"gob":     NewGobCodec(),
	}
	for name, codec := range codecs {
		ch := NewChannel("custom:brand", codec)
		msg, err := ch.PackServerBound(&brandPayload{Brand: "vanilla", Version: 3})
		if err != nil {
			t.Fatalf("%v pack: %v", name, err)
		}
		if msg.Channel != "custom:brand" {
			t.Fatalf("%v channel: %v", name, msg.Channel)
		}

		var got brandPayload
		if err := ch.UnpackServerBound(msg, &got); err != nil {
			t.Fatalf("%v unpack: %v", name, err)
		}
		if got.Brand != "vanilla" || got.Version != 3 {
			t.Fatalf("%v got %+v", name, got)
		}
	}
}

func TestChannelMismatch(t *testing.T) {
	ch := NewChannel("custom:a", NewJsonCodec())
	other := &v1_17_1.ServerBoundPluginMessage{Channel: "custom:b", Data: []byte("{}")}
	var v struct{}
	if err := ch.UnpackServerBound(other, &v); err == nil {
		t.Fatalf("expected channel mismatch error")
	}
}

func TestChannelThroughRegistry(t *testing.T) {
	ch := NewChannel("custom:stats", NewMsgpackCodec())
	in, err := ch.PackClientBound(&brandPayload{Brand: "fork", Version: 9})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	var wire bytes.Buffer
	op, err := v1_17_1.Game.Encode(protocol.ClientBound, in, &wire)
	if err != nil || op != 0x18 {
		t.Fatalf("encode: 0x%02X, %v", uint8(op), err)
	}
	pkt, err := v1_17_1.Game.Decode(protocol.ClientBound, 0x18, bytes.NewReader(wire.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var got brandPayload
	if err := ch.UnpackClientBound(pkt.(*v1_17_1.ClientBoundPluginMessage), &got); err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if got.Brand != "fork" || got.Version != 9 {
		t.Fatalf("got %+v", got)
	}
}
