package valuecodec

import (
	"context"
	"encoding/base64"
	"encoding/json"
)

// Serialized values are base64url-wrapped so the payload separators '&' and
// '=' can never appear in the output, whatever the underlying encoding emits.
var encoding = base64.RawURLEncoding

// JSON serializes session values as base64url-wrapped JSON. Deserialized
// values follow encoding/json conventions: numbers come back as float64,
// objects as map[string]any.
type JSON struct{}

// Serialize marshals the value to JSON and base64url-encodes it.
func (JSON) Serialize(_ context.Context, value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return wrap(data), nil
}

// Deserialize decodes the base64url wrapper and unmarshals the JSON.
func (JSON) Deserialize(_ context.Context, data []byte) (any, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func wrap(raw []byte) []byte {
	out := make([]byte, encoding.EncodedLen(len(raw)))
	encoding.Encode(out, raw)
	return out
}

func unwrap(data []byte) ([]byte, error) {
	out := make([]byte, encoding.DecodedLen(len(data)))
	n, err := encoding.Decode(out, data)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
