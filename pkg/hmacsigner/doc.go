// Package hmacsigner provides the default HMAC signer for session envelopes.
//
// The signer computes HMAC-SHA256 (or HMAC-SHA512 via WithSHA512) over the
// signable payload. It implements the clientsession.Signer interface:
//
//	signer, err := hmacsigner.New([]byte(secretKey))
//	if err != nil {
//		log.Fatal(err)
//	}
//	codec, err := clientsession.New(signer, valuecodec.JSON{})
//
// Keys must be at least 32 bytes. The signer is deterministic and stateless,
// safe for concurrent use across requests.
package hmacsigner
