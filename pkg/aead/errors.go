package aead

import "errors"

var (
	// ErrNoKeys indicates no encryption keys were provided.
	ErrNoKeys = errors.New("no encryption keys provided")

	// ErrKeyTooShort indicates a key doesn't meet the 32-byte minimum.
	ErrKeyTooShort = errors.New("encryption key too short")

	// ErrCiphertextTooShort indicates the input is shorter than a nonce,
	// so it cannot be a valid sealed payload.
	ErrCiphertextTooShort = errors.New("ciphertext shorter than nonce")

	// ErrDecryptionFailed indicates the payload couldn't be opened with any
	// configured key, due to corruption or wrong key material.
	ErrDecryptionFailed = errors.New("failed to decrypt payload")
)
