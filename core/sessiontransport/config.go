package sessiontransport

import (
	"net/http"
	"strings"

	"github.com/sessionkit/sessionkit/core/clientsession"
	"github.com/sessionkit/sessionkit/pkg/aead"
	"github.com/sessionkit/sessionkit/pkg/hmacsigner"
)

// Config provides environment-based configuration for the client-side
// session store.
type Config struct {
	SigningKey     string        `env:"SESSION_SIGNING_KEY,required"`
	EncryptionKeys string        `env:"SESSION_ENCRYPTION_KEYS" envDefault:""`
	CookieName     string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	MaxCookieSize  int           `env:"SESSION_MAX_COOKIE_SIZE" envDefault:"2048"`
	Path           string        `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	Domain         string        `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	MaxAge         int           `env:"SESSION_COOKIE_MAX_AGE" envDefault:"0"`
	Secure         bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	HTTPOnly       bool          `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite       http.SameSite `env:"SESSION_COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// parseEncryptionKeys splits comma-separated keys for rotation support.
// Empty segments are dropped.
func (c Config) parseEncryptionKeys() [][]byte {
	if c.EncryptionKeys == "" {
		return nil
	}

	parts := strings.Split(c.EncryptionKeys, ",")
	keys := make([][]byte, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, []byte(p))
		}
	}
	return keys
}

// NewFromConfig builds the full codec and store from configuration: an
// HMAC-SHA256 signer from SigningKey, AES-GCM encryption when EncryptionKeys
// is set, and cookie attributes from the remaining fields. Extra options are
// applied last and override config values.
func NewFromConfig(cfg Config, values clientsession.ValueSerializer, opts ...Option) (*Store, error) {
	signer, err := hmacsigner.New([]byte(cfg.SigningKey))
	if err != nil {
		return nil, err
	}

	var codecOpts []clientsession.Option
	if keys := cfg.parseEncryptionKeys(); len(keys) > 0 {
		crypto, err := aead.New(keys)
		if err != nil {
			return nil, err
		}
		codecOpts = append(codecOpts, clientsession.WithCrypto(crypto))
	}

	codec, err := clientsession.New(signer, values, codecOpts...)
	if err != nil {
		return nil, err
	}

	configOpts := []Option{
		WithCookieName(cfg.CookieName),
		WithMaxCookieSize(cfg.MaxCookieSize),
		WithPath(cfg.Path),
		WithDomain(cfg.Domain),
		WithMaxAge(cfg.MaxAge),
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HTTPOnly),
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}
	configOpts = append(configOpts, opts...)

	return New(codec, configOpts...)
}
