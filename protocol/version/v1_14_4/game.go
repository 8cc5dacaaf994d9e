// Package v1_14_4 defines the play-phase packet set of protocol
// version 1.14.4, the base epoch later versions derive from.
package v1_14_4

import (
	"github.com/timvisee/minecraft-protocol/chat"
	"github.com/timvisee/minecraft-protocol/nbt"
	"github.com/timvisee/minecraft-protocol/protocol"
)

type ServerBoundChatMessage struct {
	Message string `mc:"string,max=256"`
}

type ServerBoundKeepAlive struct {
	ID uint64
}

type ServerBoundAbilities struct {
	Flags     uint8
	FlySpeed  float32
	WalkSpeed float32
}

type ClientBoundChatMessage struct {
	Message  chat.Message
	Position uint8
}

type ClientBoundKeepAlive struct {
	ID uint64
}

type GameDisconnect struct {
	Reason chat.Message
}

// EntityAction is the clientbound entity status packet.
type EntityAction struct {
	EntityID int32
	ActionID int8
}

// BossBar carries the bar id as a split UUID; the action payload
// layout varies per action and is kept opaque.
type BossBar struct {
	IDHigh  uint64
	IDLow   uint64
	Action  int32  `mc:"varint"`
	Payload []byte `mc:"rest"`
}

type ChunkData struct {
	X            int32
	Z            int32
	FullChunk    bool
	PrimaryMask  int32 `mc:"varint"`
	Heightmaps   nbt.Compound
	Data         []byte
	TileEntities []byte `mc:"rest"`
}

type JoinGame struct {
	EntityID         int32
	GameMode         uint8
	Dimension        int32
	MaxPlayers       uint8
	LevelType        string `mc:"string,max=16"`
	ViewDistance     int32  `mc:"varint"`
	ReducedDebugInfo bool
}

// Game is the 1.14.4 play-phase registry, built from an empty base.
var Game = protocol.NewBuilder("1.14.4", nil).
	Register(protocol.ServerBound, 0x03, &ServerBoundChatMessage{}).
	Register(protocol.ServerBound, 0x0F, &ServerBoundKeepAlive{}).
	Register(protocol.ServerBound, 0x19, &ServerBoundAbilities{}).
	Register(protocol.ClientBound, 0x0D, &BossBar{}).
	Register(protocol.ClientBound, 0x0E, &ClientBoundChatMessage{}).
	Register(protocol.ClientBound, 0x1A, &GameDisconnect{}).
	Register(protocol.ClientBound, 0x1B, &EntityAction{}).
	Register(protocol.ClientBound, 0x20, &ClientBoundKeepAlive{}).
	Register(protocol.ClientBound, 0x21, &ChunkData{}).
	Register(protocol.ClientBound, 0x25, &JoinGame{}).
	MustBuild()
