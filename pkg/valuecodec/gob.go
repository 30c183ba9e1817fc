package valuecodec

import (
	"bytes"
	"context"
	"encoding/gob"
)

// Gob serializes session values with encoding/gob, preserving concrete Go
// types across the round trip. Non-trivial types must be registered first via
// Register, same as with encoding/gob directly.
type Gob struct{}

// Register records a concrete type for gob transmission.
func Register(value any) {
	gob.Register(value)
}

// Serialize gob-encodes the value and base64url-wraps it.
func (Gob) Serialize(_ context.Context, value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, err
	}
	return wrap(buf.Bytes()), nil
}

// Deserialize decodes the base64url wrapper and gob-decodes the value.
func (Gob) Deserialize(_ context.Context, data []byte) (any, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	var value any
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
