// Package v1_17_1 defines the play-phase packet set of protocol
// version 1.17.1, derived from 1.14.4. Packets whose byte layout is
// unchanged are reused from the base epoch by alias, even where their
// opcode moved.
package v1_17_1

import (
	"github.com/timvisee/minecraft-protocol/chat"
	"github.com/timvisee/minecraft-protocol/nbt"
	"github.com/timvisee/minecraft-protocol/protocol"
	"github.com/timvisee/minecraft-protocol/protocol/version/v1_14_4"
)

// Reused 1.14.4 packet types.
type (
	ServerBoundChatMessage = v1_14_4.ServerBoundChatMessage
	ServerBoundKeepAlive   = v1_14_4.ServerBoundKeepAlive
	ServerBoundAbilities   = v1_14_4.ServerBoundAbilities
	ClientBoundChatMessage = v1_14_4.ClientBoundChatMessage
	ClientBoundKeepAlive   = v1_14_4.ClientBoundKeepAlive
	GameDisconnect         = v1_14_4.GameDisconnect
	EntityAction           = v1_14_4.EntityAction
	BossBar                = v1_14_4.BossBar
	ChunkData              = v1_14_4.ChunkData
)

type ServerBoundPluginMessage struct {
	Channel string `mc:"string,max=32767"`
	Data    []byte `mc:"rest"`
}

type ClientBoundPluginMessage struct {
	Channel string `mc:"string,max=32767"`
	Data    []byte `mc:"rest"`
}

// NamedSoundEffect positions are fixed-point, in eighths of a block.
type NamedSoundEffect struct {
	SoundName     string `mc:"string,max=32767"`
	SoundCategory int32  `mc:"varint"`
	EffectPosX    int32
	EffectPosY    int32
	EffectPosZ    int32
	Volume        float32
	Pitch         float32
}

type JoinGame struct {
	EntityID            uint32
	Hardcore            bool
	GameMode            uint8
	PreviousGameMode    uint8
	WorldNames          []string `mc:"string,max=32767"`
	DimensionCodec      nbt.Compound
	Dimension           nbt.Compound
	WorldName           string `mc:"string,max=32767"`
	HashedSeed          int64
	MaxPlayers          int32 `mc:"varint"`
	ViewDistance        int32 `mc:"varint"`
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	IsDebug             bool
	IsFlat              bool
}

type Respawn struct {
	Dimension        nbt.Compound
	WorldName        string `mc:"string,max=32767"`
	HashedSeed       int64
	GameMode         uint8
	PreviousGameMode uint8
	IsDebug          bool
	IsFlat           bool
	CopyMetadata     bool
}

type PlayerPositionAndLook struct {
	X               float64
	Y               float64
	Z               float64
	Yaw             float32
	Pitch           float32
	Flags           uint8
	TeleportID      int32 `mc:"varint"`
	DismountVehicle bool
}

type TimeUpdate struct {
	WorldAge  int64
	TimeOfDay int64
}

type SetTitleText struct {
	Text chat.Message
}

type SetTitleSubtitle struct {
	Text chat.Message
}

type SetTitleTimes struct {
	FadeIn  int32
	Stay    int32
	FadeOut int32
}

type SpawnPosition struct {
	Position uint64
	Angle    float32
}

// Game is the 1.17.1 play-phase registry. JoinGame changed both its
// schema and its opcode (0x25 became 0x26); everything else from
// 1.14.4 is inherited unchanged.
var Game = protocol.NewBuilder("1.17.1", v1_14_4.Game).
	Register(protocol.ServerBound, 0x0A, &ServerBoundPluginMessage{}).
	Remove(protocol.ClientBound, 0x25).
	Register(protocol.ClientBound, 0x18, &ClientBoundPluginMessage{}).
	Register(protocol.ClientBound, 0x19, &NamedSoundEffect{}).
	Register(protocol.ClientBound, 0x26, &JoinGame{}).
	Register(protocol.ClientBound, 0x38, &PlayerPositionAndLook{}).
	Register(protocol.ClientBound, 0x3D, &Respawn{}).
	Register(protocol.ClientBound, 0x4B, &SpawnPosition{}).
	Register(protocol.ClientBound, 0x57, &SetTitleSubtitle{}).
	Register(protocol.ClientBound, 0x58, &TimeUpdate{}).
	Register(protocol.ClientBound, 0x59, &SetTitleText{}).
	Register(protocol.ClientBound, 0x5A, &SetTitleTimes{}).
	MustBuild()
