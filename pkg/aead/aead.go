package aead

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// keyLength is the key size for both suites (AES-256 and ChaCha20-Poly1305).
const keyLength = 32

// Suite selects the AEAD construction.
type Suite int

const (
	// SuiteAESGCM uses AES-256-GCM.
	SuiteAESGCM Suite = iota
	// SuiteChaCha20Poly1305 uses ChaCha20-Poly1305.
	SuiteChaCha20Poly1305
)

// Crypto encrypts session payloads with an AEAD cipher. The first key
// encrypts; all keys are tried on decryption, which allows key rotation
// without invalidating sessions sealed under an older key.
type Crypto struct {
	keys  [][]byte
	suite Suite
}

// Option configures the Crypto.
type Option func(*Crypto)

// WithSuite selects the AEAD construction (default SuiteAESGCM).
func WithSuite(suite Suite) Option {
	return func(c *Crypto) {
		c.suite = suite
	}
}

// New creates a Crypto with the given keys. Keys must be at least 32 bytes;
// only the first 32 bytes are used. Keys are copied.
func New(keys [][]byte, opts ...Option) (*Crypto, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	copied := make([][]byte, 0, len(keys))
	for i, key := range keys {
		if len(key) < keyLength {
			return nil, fmt.Errorf("%w: key %d has %d bytes, need at least %d", ErrKeyTooShort, i, len(key), keyLength)
		}
		copied = append(copied, append([]byte(nil), key[:keyLength]...))
	}

	c := &Crypto{keys: copied, suite: SuiteAESGCM}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encrypt seals the plaintext under the primary key. The output is
// nonce||ciphertext with a random nonce per call.
func (c *Crypto) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	aead, err := c.newAEAD(c.keys[0])
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens nonce||ciphertext, trying every key for rotation support.
func (c *Crypto) Decrypt(_ context.Context, data []byte) ([]byte, error) {
	for _, key := range c.keys {
		aead, err := c.newAEAD(key)
		if err != nil {
			continue
		}
		if len(data) < aead.NonceSize() {
			return nil, ErrCiphertextTooShort
		}

		nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
		plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
		if err == nil {
			return plaintext, nil
		}
	}
	return nil, ErrDecryptionFailed
}

func (c *Crypto) newAEAD(key []byte) (cipher.AEAD, error) {
	switch c.suite {
	case SuiteChaCha20Poly1305:
		return chacha20poly1305.New(key)
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	}
}
