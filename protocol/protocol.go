// Package protocol defines packet schemas, per-epoch opcode
// registries and the generic encode/decode machinery shared by all
// protocol versions. Packets are plain structs; their wire layout is
// declared by field order plus the `mc` struct tag and compiled into
// an introspectable schema when a registry is built.
package protocol

// Direction names one half of the duplex connection. Opcode spaces
// are independent per direction.
type Direction uint8

const (
	ServerBound Direction = iota // client to server
	ClientBound                  // server to client
)

func (d Direction) String() string {
	switch d {
	case ServerBound:
		return "serverbound"
	case ClientBound:
		return "clientbound"
	default:
		return "invalid"
	}
}

// Opcode identifies a packet type within one (epoch, direction).
type Opcode uint8

// Packet is a decoded packet value, always a pointer to one of the
// registered packet structs. Callers type-switch on the concrete type.
type Packet interface{}
