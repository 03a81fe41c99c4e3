package telemetry

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)

type Codec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte, target any) error
}

// NewCodec returns the codec for the given encoding name. An empty name
// selects JSON.
func NewCodec(encoding string) (Codec, error) {
	switch encoding {
	case "", EncodingJSON:
		return JSONCodec{}, nil
	case EncodingMsgpack:
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("unknown telemetry encoding %q", encoding)
}

var _ Codec = JSONCodec{}

type JSONCodec struct{}

func (JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte, target any) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshaling data: %w", err)
	}
	return nil
}

var _ Codec = MsgpackCodec{}

// MsgpackCodec keeps payloads small for constrained uplinks.
type MsgpackCodec struct{}

func (MsgpackCodec) Encode(value any) ([]byte, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling msgpack: %w", err)
	}
	return data, nil
}

func (MsgpackCodec) Decode(data []byte, target any) error {
	if err := msgpack.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshaling msgpack: %w", err)
	}
	return nil
}
