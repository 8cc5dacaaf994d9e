package protocol

import "fmt"

// UnknownPacketTypeError reports an opcode absent from the registry
// of its (epoch, direction). The caller decides whether to skip the
// frame or drop the connection; the codec never retries.
type UnknownPacketTypeError struct {
	Epoch     string
	Direction Direction
	Opcode    Opcode
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("protocol: unknown packet type 0x%02X (%v %v)", uint8(e.Opcode), e.Epoch, e.Direction)
}

// FieldError wraps a primitive decode or encode failure with the
// packet and field it occurred in. The enclosing packet is aborted
// whole; no partial value is ever returned.
type FieldError struct {
	Packet string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("protocol: %v.%v: %v", e.Packet, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
