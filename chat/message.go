// Package chat models the JSON chat component carried by chat,
// disconnect and title packets. On the wire a message is a JSON
// document encoded as a length-prefixed string field.
package chat

import "encoding/json"

// MaxLength bounds the UTF-8 byte length of an encoded message.
const MaxLength = 262144

type Message struct {
	Text          string    `json:"text"`
	Bold          bool      `json:"bold,omitempty"`
	Italic        bool      `json:"italic,omitempty"`
	Underlined    bool      `json:"underlined,omitempty"`
	Strikethrough bool      `json:"strikethrough,omitempty"`
	Obfuscated    bool      `json:"obfuscated,omitempty"`
	Color         string    `json:"color,omitempty"`
	Extra         []Message `json:"extra,omitempty"`
}

func NewMessage(text string) Message {
	return Message{Text: text}
}

// MarshalJSONString renders the canonical wire form of the message.
func (m Message) MarshalJSONString() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalJSONString parses a wire-form message document.
func UnmarshalJSONString(s string) (Message, error) {
	var m Message
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
