package clientsession

import "context"

// Signer produces a message authentication tag over the signable payload.
// Implementations must be deterministic for the same key material: the codec
// verifies envelopes by recomputing the signature and comparing byte-for-byte.
type Signer interface {
	Sign(ctx context.Context, payload []byte) ([]byte, error)
}

// Crypto encrypts the flat payload before signing and decrypts it after
// verification. It is optional; without it the payload travels in clear but
// is still signed.
type Crypto interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// ValueSerializer converts a single session value to and from bytes. The
// serialized form must be safe to delimit by the payload separators '&' and
// '=': implementations typically base64-wrap their output. The context is the
// caller's and is passed through untouched, allowing implementations to carry
// request-scoped codec state.
type ValueSerializer interface {
	Serialize(ctx context.Context, value any) ([]byte, error)
	Deserialize(ctx context.Context, data []byte) (any, error)
}
