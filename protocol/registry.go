package protocol

import (
	"io"
	"reflect"
	"sort"

	"github.com/pkg/errors"

	"github.com/timvisee/minecraft-protocol/codec"
)

// Registry is the bijective opcode <-> packet-type mapping of one
// protocol epoch, per direction. Registries are built once, before
// any traffic, and are immutable afterwards; concurrent use needs no
// locking.
type Registry struct {
	epoch   string
	entries [2]map[Opcode]*Schema
	types   [2]map[reflect.Type]Opcode
}

func (reg *Registry) Epoch() string {
	return reg.epoch
}

// Opcodes lists the registered opcodes of one direction, ascending.
func (reg *Registry) Opcodes(dir Direction) []Opcode {
	if dir > ClientBound {
		return nil
	}
	ops := make([]Opcode, 0, len(reg.entries[dir]))
	for op := range reg.entries[dir] {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Schema returns the compiled layout behind one opcode.
func (reg *Registry) Schema(dir Direction, op Opcode) (*Schema, bool) {
	if dir > ClientBound {
		return nil, false
	}
	s, ok := reg.entries[dir][op]
	return s, ok
}

// New allocates a zero packet value for one opcode.
func (reg *Registry) New(dir Direction, op Opcode) (Packet, bool) {
	s, ok := reg.Schema(dir, op)
	if !ok {
		return nil, false
	}
	return s.New(), true
}

// Decode reads the payload of the packet identified by (direction,
// opcode) from r, which must be positioned at the first payload byte.
// An opcode absent from this registry fails with
// *UnknownPacketTypeError; field failures pass through unchanged.
func (reg *Registry) Decode(dir Direction, op Opcode, r io.Reader) (Packet, error) {
	if dir > ClientBound {
		return nil, errors.Errorf("protocol: invalid direction %v", uint8(dir))
	}
	s, ok := reg.entries[dir][op]
	if !ok {
		return nil, &UnknownPacketTypeError{Epoch: reg.epoch, Direction: dir, Opcode: op}
	}
	pkt := s.New()
	if err := s.Decode(codec.NewReader(r), pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}

// TypeID returns the opcode a packet value encodes under in this
// registry. For a value produced by Decode this is exactly the opcode
// it was decoded from.
func (reg *Registry) TypeID(dir Direction, pkt Packet) (Opcode, error) {
	if dir > ClientBound {
		return 0, errors.Errorf("protocol: invalid direction %v", uint8(dir))
	}
	t := reflect.TypeOf(pkt)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	op, ok := reg.types[dir][t]
	if !ok {
		return 0, errors.Errorf("protocol: %T is not registered in epoch %v %v", pkt, reg.epoch, dir)
	}
	return op, nil
}

// Encode writes the packet's payload to w and returns the opcode the
// caller must frame it under.
func (reg *Registry) Encode(dir Direction, pkt Packet, w io.Writer) (Opcode, error) {
	op, err := reg.TypeID(dir, pkt)
	if err != nil {
		return 0, err
	}
	s := reg.entries[dir][op]
	if err := s.Encode(codec.NewWriter(w), pkt); err != nil {
		return 0, err
	}
	return op, nil
}

type builderEntry struct {
	dir       Direction
	opcode    Opcode
	prototype Packet
}

type builderRemove struct {
	dir    Direction
	opcode Opcode
}

// Builder composes one epoch's registry from its predecessor plus an
// override set. The first epoch is built from a nil base. Composition
// errors surface at Build, before any message is handled.
type Builder struct {
	epoch   string
	base    *Registry
	adds    []builderEntry
	removes []builderRemove
}

func NewBuilder(epoch string, base *Registry) *Builder {
	return &Builder{epoch: epoch, base: base}
}

// Register adds a packet or overrides an inherited one. When the
// prototype's type is already mapped under another opcode the old
// entry is dropped, so a packet can move opcode while keeping its
// schema, change schema in place, or both.
func (b *Builder) Register(dir Direction, op Opcode, prototype Packet) *Builder {
	b.adds = append(b.adds, builderEntry{dir: dir, opcode: op, prototype: prototype})
	return b
}

// Remove drops an inherited opcode from the composed registry.
func (b *Builder) Remove(dir Direction, op Opcode) *Builder {
	b.removes = append(b.removes, builderRemove{dir: dir, opcode: op})
	return b
}

func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{epoch: b.epoch}
	for d := range reg.entries {
		reg.entries[d] = make(map[Opcode]*Schema)
		reg.types[d] = make(map[reflect.Type]Opcode)
	}
	if b.base != nil {
		for d := range b.base.entries {
			for op, s := range b.base.entries[d] {
				reg.entries[d][op] = s
			}
			for t, op := range b.base.types[d] {
				reg.types[d][t] = op
			}
		}
	}

	for _, rm := range b.removes {
		if rm.dir > ClientBound {
			return nil, errors.Errorf("protocol: epoch %v: invalid direction %v", b.epoch, uint8(rm.dir))
		}
		s, ok := reg.entries[rm.dir][rm.opcode]
		if !ok {
			return nil, errors.Errorf("protocol: epoch %v: remove of unknown opcode 0x%02X (%v)",
				b.epoch, uint8(rm.opcode), rm.dir)
		}
		delete(reg.entries[rm.dir], rm.opcode)
		delete(reg.types[rm.dir], s.typ)
	}

	seen := [2]map[Opcode]bool{make(map[Opcode]bool), make(map[Opcode]bool)}
	for _, add := range b.adds {
		if add.dir > ClientBound {
			return nil, errors.Errorf("protocol: epoch %v: invalid direction %v", b.epoch, uint8(add.dir))
		}
		if seen[add.dir][add.opcode] {
			return nil, errors.Errorf("protocol: epoch %v: opcode 0x%02X registered twice (%v)",
				b.epoch, uint8(add.opcode), add.dir)
		}
		seen[add.dir][add.opcode] = true

		s, err := SchemaOf(add.prototype)
		if err != nil {
			return nil, errors.Wrapf(err, "epoch %v: opcode 0x%02X (%v)", b.epoch, uint8(add.opcode), add.dir)
		}

		// an override by type vacates the type's old opcode
		if old, ok := reg.types[add.dir][s.typ]; ok {
			delete(reg.entries[add.dir], old)
			delete(reg.types[add.dir], s.typ)
		}
		if prev, ok := reg.entries[add.dir][add.opcode]; ok {
			// occupied by an inherited entry of another type: an
			// explicit override replaces it
			delete(reg.types[add.dir], prev.typ)
		}
		reg.entries[add.dir][add.opcode] = s
		reg.types[add.dir][s.typ] = add.opcode
	}

	// the maps are keyed so opcode uniqueness holds by construction;
	// verify the type mapping stayed bijective
	for d := range reg.entries {
		if len(reg.entries[d]) != len(reg.types[d]) {
			return nil, errors.Errorf("protocol: epoch %v: opcode/type mapping is not bijective (%v)",
				b.epoch, Direction(d))
		}
		for op, s := range reg.entries[d] {
			if back, ok := reg.types[d][s.typ]; !ok || back != op {
				return nil, errors.Errorf("protocol: epoch %v: packet %v mapped to 0x%02X and 0x%02X (%v)",
					b.epoch, s.name, uint8(op), uint8(back), Direction(d))
			}
		}
	}
	return reg, nil
}

// MustBuild is Build for the static var-block registries; a
// composition error there is unrecoverable.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		getLogger().WithStack(err)
	}
	return reg
}
