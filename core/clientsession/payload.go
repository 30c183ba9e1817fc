package clientsession

import (
	"bytes"
	"net/url"
)

// Structural separators of the flat payload. Escaped keys cannot contain
// either byte; value bytes are opaque and the value serializer guarantees
// they are delimiter-safe.
const (
	pairSeparator     = '&'
	keyValueSeparator = '='
)

// pair holds one assembled payload pair: the key already form-urlencoded,
// the value as raw serializer output.
type pair struct {
	key   string
	value []byte
}

// escapeKey form-urlencodes a session key: reserved bytes percent-encoded,
// space encoded as "+". The result is free of '=' and '&'.
func escapeKey(key string) string {
	return url.QueryEscape(key)
}

// unescapeKey reverses escapeKey.
func unescapeKey(key string) (string, error) {
	return url.QueryUnescape(key)
}

// assemblePayload joins pairs into the flat wire form
// "key1=value1&key2=value2" with no trailing separator. Zero pairs produce an
// empty payload.
func assemblePayload(pairs []pair) []byte {
	size := 0
	for _, p := range pairs {
		size += len(p.key) + len(p.value) + 2
	}

	var buf bytes.Buffer
	buf.Grow(size)
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(pairSeparator)
		}
		buf.WriteString(p.key)
		buf.WriteByte(keyValueSeparator)
		buf.Write(p.value)
	}
	return buf.Bytes()
}

// parsePayload splits the flat payload back into pairs, percent-decoding keys
// and leaving value bytes untouched. A pair without '=' yields the key with an
// empty value. Duplicate keys are preserved in order; the caller applies its
// first-value-wins policy.
func parsePayload(payload []byte) ([]pair, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	raw := bytes.Split(payload, []byte{pairSeparator})
	pairs := make([]pair, 0, len(raw))
	for _, rp := range raw {
		if len(rp) == 0 {
			continue
		}

		var escapedKey, value []byte
		if i := bytes.IndexByte(rp, keyValueSeparator); i >= 0 {
			escapedKey, value = rp[:i], rp[i+1:]
		} else {
			escapedKey = rp
		}

		key, err := unescapeKey(string(escapedKey))
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair{key: key, value: value})
	}
	return pairs, nil
}
