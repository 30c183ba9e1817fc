package clientsession

// Option configures the codec at construction time.
type Option func(*Codec)

// WithCrypto enables payload encryption. The signature then covers the
// ciphertext, never the plaintext.
func WithCrypto(crypto Crypto) Option {
	return func(c *Codec) {
		c.crypto = crypto
	}
}
