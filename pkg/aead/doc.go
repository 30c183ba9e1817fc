// Package aead provides AEAD-based payload encryption for session envelopes.
//
// It implements the clientsession.Crypto interface using AES-256-GCM by
// default, or ChaCha20-Poly1305 via WithSuite. Sealed payloads carry the
// random nonce as a prefix (nonce||ciphertext).
//
// Multiple keys support rotation: the first key seals new payloads, every key
// is tried when opening, so sessions sealed under a previous key keep working
// after a rotation:
//
//	crypto, err := aead.New([][]byte{currentKey, previousKey})
//	if err != nil {
//		log.Fatal(err)
//	}
//	codec, err := clientsession.New(signer, valuecodec.JSON{},
//		clientsession.WithCrypto(crypto))
//
// Keys must be at least 32 bytes; only the first 32 are used.
package aead
