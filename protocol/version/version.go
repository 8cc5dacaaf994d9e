// Package version is the dispatch entry point over the built-in epoch
// registries. Embedders running custom protocol forks can register
// additional epochs at runtime; lookups and registrations may happen
// concurrently.
package version

import (
	"errors"
	"io"

	cmap "github.com/orcaman/concurrent-map"

	"github.com/timvisee/minecraft-protocol/protocol"
	"github.com/timvisee/minecraft-protocol/protocol/version/v1_14_4"
	"github.com/timvisee/minecraft-protocol/protocol/version/v1_17_1"
)

var (
	ErrUnknownEpoch   = errors.New("version: unknown protocol epoch")
	ErrDuplicateEpoch = errors.New("version: epoch already registered")
)

var registries = cmap.New()

func init() {
	MustRegister(v1_14_4.Game)
	MustRegister(v1_17_1.Game)
}

// Register adds an epoch registry to the dispatch table.
func Register(reg *protocol.Registry) error {
	if !registries.SetIfAbsent(reg.Epoch(), reg) {
		return ErrDuplicateEpoch
	}
	return nil
}

func MustRegister(reg *protocol.Registry) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}

// Lookup returns the registry of one epoch.
func Lookup(epoch string) (*protocol.Registry, bool) {
	v, ok := registries.Get(epoch)
	if !ok {
		return nil, false
	}
	return v.(*protocol.Registry), true
}

// Epochs lists the registered epoch names.
func Epochs() []string {
	return registries.Keys()
}

// Decode reads the payload of the packet identified by (epoch,
// direction, opcode) from r, which must be positioned at the first
// payload byte. Each call is independent; the codec keeps no state
// between packets.
func Decode(epoch string, dir protocol.Direction, op protocol.Opcode, r io.Reader) (protocol.Packet, error) {
	reg, ok := Lookup(epoch)
	if !ok {
		return nil, ErrUnknownEpoch
	}
	return reg.Decode(dir, op, r)
}

// TypeID returns the opcode a packet value belongs to within one
// epoch and direction.
func TypeID(epoch string, dir protocol.Direction, pkt protocol.Packet) (protocol.Opcode, error) {
	reg, ok := Lookup(epoch)
	if !ok {
		return 0, ErrUnknownEpoch
	}
	return reg.TypeID(dir, pkt)
}

// Encode writes a packet's payload to w and returns its opcode.
func Encode(epoch string, dir protocol.Direction, pkt protocol.Packet, w io.Writer) (protocol.Opcode, error) {
	reg, ok := Lookup(epoch)
	if !ok {
		return 0, ErrUnknownEpoch
	}
	return reg.Encode(dir, pkt, w)
}
