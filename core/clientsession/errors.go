package clientsession

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSigner indicates the codec was constructed without a signer.
	// Every envelope is signed, so a signer is mandatory.
	ErrNoSigner = errors.New("signer is required")

	// ErrNoValueSerializer indicates the codec was constructed without a value serializer.
	ErrNoValueSerializer = errors.New("value serializer is required")

	// ErrInvalidChunkSize indicates a non-positive maximum cookie size was
	// requested for chunked serialization.
	ErrInvalidChunkSize = errors.New("max cookie size must be at least 1")
)

// CodecError wraps a failure raised by a collaborator (signer, crypto, value
// serializer) or by payload parsing. Use errors.As to recover it and
// errors.Unwrap (or errors.Is) to reach the original cause.
//
// A tampered or malformed envelope is not a CodecError: Deserialize treats it
// as "no session" and returns an empty session instead.
type CodecError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	return fmt.Sprintf("clientsession: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CodecError) Unwrap() error {
	return e.Err
}
