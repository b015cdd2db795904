package tune

import (
	"encoding/json"
	"errors"

	"github.com/stdiopt/repelgrid/field"
)

const (
	opHello = iota + 1
	opConfig
)

// ErrUnknownOp is returned when decoding a message with an op code this
// package does not know.
var ErrUnknownOp = errors.New("unknown operation")

// Message wraps an op for the wire: {"OP": n, "Payload": {...}}.
type Message struct {
	Payload interface{}
}

func (m *Message) UnmarshalJSON(raw []byte) error {
	v := struct {
		OP      uint
		Payload json.RawMessage
	}{}
	err := json.Unmarshal(raw, &v)
	if err != nil {
		return err
	}
	switch v.OP {
	case opHello:
		payload := HelloOP{}
		err = json.Unmarshal(v.Payload, &payload)
		m.Payload = payload
	case opConfig:
		payload := ConfigOP{}
		err = json.Unmarshal(v.Payload, &payload)
		m.Payload = payload
	default:
		return ErrUnknownOp
	}
	return err
}

func (m Message) MarshalJSON() ([]byte, error) {
	v := struct {
		OP      uint
		Payload interface{}
	}{
		Payload: m.Payload,
	}
	switch m.Payload.(type) {
	case HelloOP:
		v.OP = opHello
	case ConfigOP:
		v.OP = opConfig
	default:
		return nil, ErrUnknownOp
	}
	return json.Marshal(v)
}

// HelloOP is sent by the hub to every new page with the tuning in effect.
type HelloOP struct {
	Config  field.Config
	Clients int
}

// ConfigOP carries a tuning change, page to hub and hub to the other pages.
type ConfigOP struct {
	Config field.Config
}

// Encode wraps op in a Message and marshals it.
func Encode(op interface{}) ([]byte, error) {
	return json.Marshal(Message{Payload: op})
}

// Decode unmarshals a Message and returns its op.
func Decode(raw []byte) (interface{}, error) {
	m := Message{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m.Payload, nil
}
