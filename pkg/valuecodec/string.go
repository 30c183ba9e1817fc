package valuecodec

import (
	"context"
	"fmt"
)

// String serializes text values only. It is the lightest codec when all
// session values are strings; any other type is rejected.
type String struct{}

// Serialize base64url-encodes the string value.
func (String) Serialize(_ context.Context, value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
	return wrap([]byte(s)), nil
}

// Deserialize decodes the base64url wrapper back to a string.
func (String) Deserialize(_ context.Context, data []byte) (any, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
