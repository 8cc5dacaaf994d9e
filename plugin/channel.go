package plugin

import (
	"github.com/pkg/errors"

	"github.com/timvisee/minecraft-protocol/protocol/version/v1_17_1"
)

// Channel binds a plugin channel name to the codec both ends agreed
// on for its payloads.
type Channel struct {
	name  string
	codec Codec
}

func NewChannel(name string, codec Codec) Channel {
	return Channel{name: name, codec: codec}
}

func (c Channel) Name() string {
	return c.name
}

// PackServerBound serializes v into a serverbound plugin message.
func (c Channel) PackServerBound(v any) (*v1_17_1.ServerBoundPluginMessage, error) {
	data, err := c.codec.Encode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: channel %v", c.name)
	}
	return &v1_17_1.ServerBoundPluginMessage{Channel: c.name, Data: data}, nil
}

// UnpackServerBound deserializes a serverbound plugin message into v,
// rejecting messages addressed to another channel.
func (c Channel) UnpackServerBound(m *v1_17_1.ServerBoundPluginMessage, v any) error {
	if m.Channel != c.name {
		return errors.Errorf("plugin: message for channel %v, want %v", m.Channel, c.name)
	}
	return errors.Wrapf(c.codec.Decode(m.Data, v), "plugin: channel %v", c.name)
}

// PackClientBound serializes v into a clientbound plugin message.
func (c Channel) PackClientBound(v any) (*v1_17_1.ClientBoundPluginMessage, error) {
	data, err := c.codec.Encode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "plugin: channel %v", c.name)
	}
	return &v1_17_1.ClientBoundPluginMessage{Channel: c.name, Data: data}, nil
}

// UnpackClientBound deserializes a clientbound plugin message into v.
func (c Channel) UnpackClientBound(m *v1_17_1.ClientBoundPluginMessage, v any) error {
	if m.Channel != c.name {
		return errors.Errorf("plugin: message for channel %v, want %v", m.Channel, c.name)
	}
	return errors.Wrapf(c.codec.Decode(m.Data, v), "plugin: channel %v", c.name)
}
