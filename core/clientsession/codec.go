package clientsession

import (
	"context"
	"crypto/hmac"
	"encoding/base64"
	"strings"
)

// envelopeSeparator divides the base64url payload from the base64url digest.
// It cannot occur inside either component.
const envelopeSeparator = ":"

// encoding is padded base64url, matching the envelope format of existing
// deployments. Decoding is strict: lenient decoders discard trailing bits of
// the final group, which would let some single-bit corruptions slip past
// signature verification.
var (
	encoding       = base64.URLEncoding
	strictEncoding = base64.URLEncoding.Strict()
)

// Codec turns session entries into signed (and optionally encrypted) cookie
// envelopes and back. It holds only immutable collaborator references, so a
// single instance is safe for concurrent use by any number of requests.
type Codec struct {
	signer Signer
	values ValueSerializer
	crypto Crypto
}

// New creates a codec from a signer and value serializer. Encryption is off
// unless enabled via WithCrypto.
func New(signer Signer, values ValueSerializer, opts ...Option) (*Codec, error) {
	if signer == nil {
		return nil, ErrNoSigner
	}
	if values == nil {
		return nil, ErrNoValueSerializer
	}

	c := &Codec{signer: signer, values: values}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Serialize encodes the entries into a single envelope string:
// base64url(payload) + ":" + base64url(signature). When encryption is
// configured the payload is encrypted first and the signature covers the
// ciphertext. The input is never mutated. Any collaborator failure is
// returned as a *CodecError wrapping the cause; no partial result escapes.
func (c *Codec) Serialize(ctx context.Context, entries []Entry) (string, error) {
	pairs := make([]pair, 0, len(entries))
	for _, e := range entries {
		data, err := c.values.Serialize(ctx, e.Value)
		if err != nil {
			return "", &CodecError{Op: "serialize value", Err: err}
		}
		pairs = append(pairs, pair{key: escapeKey(e.Key), value: data})
	}

	payload := assemblePayload(pairs)

	if c.crypto != nil {
		encrypted, err := c.crypto.Encrypt(ctx, payload)
		if err != nil {
			return "", &CodecError{Op: "encrypt payload", Err: err}
		}
		payload = encrypted
	}

	digest, err := c.signer.Sign(ctx, payload)
	if err != nil {
		return "", &CodecError{Op: "sign payload", Err: err}
	}

	return encoding.EncodeToString(payload) + envelopeSeparator + encoding.EncodeToString(digest), nil
}

// SerializeChunked encodes the entries and splits the envelope into ordered
// partitions of at most maxCookieSize characters each; the last partition
// holds the remainder. Concatenating the partitions in order reproduces the
// envelope exactly. An envelope within the limit is returned as a single
// partition.
func (c *Codec) SerializeChunked(ctx context.Context, entries []Entry, maxCookieSize int) ([]string, error) {
	if maxCookieSize < 1 {
		return nil, ErrInvalidChunkSize
	}

	envelope, err := c.Serialize(ctx, entries)
	if err != nil {
		return nil, err
	}
	if len(envelope) <= maxCookieSize {
		return []string{envelope}, nil
	}
	return splitEnvelope(envelope, maxCookieSize), nil
}

// splitEnvelope cuts the envelope into max-sized partitions, remainder last.
func splitEnvelope(envelope string, max int) []string {
	partitions := make([]string, 0, (len(envelope)+max-1)/max)
	for from := 0; from < len(envelope); from += max {
		to := from + max
		if to > len(envelope) {
			to = len(envelope)
		}
		partitions = append(partitions, envelope[from:to])
	}
	return partitions
}

// Deserialize reassembles the cookie fragments in the order supplied and
// decodes them back into a session. Fragments are concatenated exactly as
// given; callers must preserve partition order.
//
// Absent input, a malformed envelope (wrong part count or undecodable
// base64), and a signature mismatch all yield an empty session with no
// error: from the caller's perspective a tampered cookie is
// indistinguishable from no cookie at all. Failures during decryption,
// payload parsing, or value deserialization are returned as *CodecError.
func (c *Codec) Deserialize(ctx context.Context, fragments ...string) (*Session, error) {
	envelope := strings.Join(fragments, "")
	if envelope == "" {
		return NewSession(), nil
	}

	parts := strings.Split(envelope, envelopeSeparator)
	if len(parts) != 2 {
		return NewSession(), nil
	}

	// Undecodable base64 is corruption, handled like any other tampering.
	payload, err := strictEncoding.DecodeString(parts[0])
	if err != nil {
		return NewSession(), nil
	}
	digest, err := strictEncoding.DecodeString(parts[1])
	if err != nil {
		return NewSession(), nil
	}

	expected, err := c.signer.Sign(ctx, payload)
	if err != nil {
		return nil, &CodecError{Op: "sign payload", Err: err}
	}
	if !hmac.Equal(digest, expected) {
		return NewSession(), nil
	}

	if c.crypto != nil {
		plaintext, err := c.crypto.Decrypt(ctx, payload)
		if err != nil {
			return nil, &CodecError{Op: "decrypt payload", Err: err}
		}
		payload = plaintext
	}

	pairs, err := parsePayload(payload)
	if err != nil {
		return nil, &CodecError{Op: "parse payload", Err: err}
	}

	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		// First value wins for repeated keys.
		if _, ok := values[p.key]; ok {
			continue
		}
		v, err := c.values.Deserialize(ctx, p.value)
		if err != nil {
			return nil, &CodecError{Op: "deserialize value", Err: err}
		}
		values[p.key] = v
	}

	return newSessionFrom(values), nil
}
