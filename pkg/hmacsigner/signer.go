package hmacsigner

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// minKeyLength matches the HMAC-SHA256 block-derived minimum; shorter keys
// weaken the MAC.
const minKeyLength = 32

// Signer computes HMAC tags over session payloads. It is stateless after
// construction and safe for concurrent use.
type Signer struct {
	key     []byte
	newHash func() hash.Hash
}

// Option configures the signer.
type Option func(*Signer)

// WithSHA512 switches the MAC from HMAC-SHA256 to HMAC-SHA512.
func WithSHA512() Option {
	return func(s *Signer) {
		s.newHash = sha512.New
	}
}

// New creates an HMAC-SHA256 signer with the given key. The key is copied;
// callers may reuse or zero their buffer afterwards.
func New(key []byte, opts ...Option) (*Signer, error) {
	if len(key) == 0 {
		return nil, ErrNoKey
	}
	if len(key) < minKeyLength {
		return nil, fmt.Errorf("%w: have %d bytes, need at least %d", ErrKeyTooShort, len(key), minKeyLength)
	}

	s := &Signer{
		key:     append([]byte(nil), key...),
		newHash: sha256.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sign returns the MAC over payload. Deterministic for the same key, so the
// same bytes always produce the same tag.
func (s *Signer) Sign(_ context.Context, payload []byte) ([]byte, error) {
	mac := hmac.New(s.newHash, s.key)
	mac.Write(payload)
	return mac.Sum(nil), nil
}
