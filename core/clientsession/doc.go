// Package clientsession implements a client-side session codec: it encodes an
// in-memory set of session key/value pairs into one or more opaque,
// tamper-evident strings suitable for HTTP cookies, and decodes them back on
// the next request. Session state lives entirely in the cookie; there is no
// server-side store.
//
// # Envelope format
//
// Entries are flattened into "key=value&key=value" form with keys
// form-urlencoded and values produced by a pluggable serializer, optionally
// encrypted, then signed:
//
//	base64url(payload) + ":" + base64url(signature)
//
// When encryption is enabled the signature covers the ciphertext, so
// verification never touches unauthenticated plaintext.
//
// # Basic usage
//
//	signer, _ := hmacsigner.New([]byte("at-least-32-bytes-of-key-material"))
//	codec, _ := clientsession.New(signer, valuecodec.JSON{})
//
//	envelope, err := codec.Serialize(ctx, []clientsession.Entry{
//		{Key: "user", Value: "alice"},
//		{Key: "role", Value: "admin"},
//	})
//
//	sess, err := codec.Deserialize(ctx, envelope)
//	user, _ := sess.Get("user")
//
// # Encryption
//
// Pass a Crypto implementation to keep the payload confidential:
//
//	crypto, _ := aead.New([][]byte{key})
//	codec, _ := clientsession.New(signer, valuecodec.JSON{}, clientsession.WithCrypto(crypto))
//
// # Cookie chunking
//
// Browsers cap individual cookie sizes. SerializeChunked splits the envelope
// into ordered partitions no longer than the given limit:
//
//	partitions, err := codec.SerializeChunked(ctx, entries, 2048)
//
// Deserialize accepts the partitions as variadic fragments and concatenates
// them in the order supplied. Order is the caller's responsibility: the codec
// never reorders fragments.
//
// # Tampering
//
// A malformed envelope or failed signature check yields an empty session, not
// an error — indistinguishable from a first visit. Collaborator failures
// (signing, encryption, value serialization) surface as *CodecError.
//
// # Concurrency
//
// A Codec holds only immutable collaborator references and may be shared
// freely across goroutines. The *Session returned by Deserialize is
// internally synchronized for concurrent reads and writes.
package clientsession
