package hmacsigner

import "errors"

var (
	// ErrNoKey indicates no key material was provided.
	ErrNoKey = errors.New("no signing key provided")

	// ErrKeyTooShort indicates the key doesn't meet the minimum length.
	// Keys must be at least 32 bytes.
	ErrKeyTooShort = errors.New("signing key too short")
)
