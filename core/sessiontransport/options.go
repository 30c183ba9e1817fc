package sessiontransport

import (
	"log/slog"
	"net/http"
)

// cookieOptions holds the HTTP attributes applied to every partition cookie.
type cookieOptions struct {
	path     string
	domain   string
	maxAge   int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Store.
type Option func(*Store)

// WithCookieName sets the base cookie name; partitions are named
// "<name>_0", "<name>_1", and so on.
func WithCookieName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithMaxCookieSize sets the maximum partition value length.
func WithMaxCookieSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.maxCookieSize = size
		}
	}
}

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(s *Store) {
		s.opts.path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(s *Store) {
		s.opts.domain = domain
	}
}

// WithMaxAge sets the cookie max-age in seconds. Zero means a browser
// session cookie.
func WithMaxAge(seconds int) Option {
	return func(s *Store) {
		s.opts.maxAge = seconds
	}
}

// WithSecure restricts the cookies to HTTPS.
func WithSecure(secure bool) Option {
	return func(s *Store) {
		s.opts.secure = secure
	}
}

// WithHTTPOnly controls JavaScript access to the cookies.
func WithHTTPOnly(httpOnly bool) Option {
	return func(s *Store) {
		s.opts.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(sameSite http.SameSite) Option {
	return func(s *Store) {
		s.opts.sameSite = sameSite
	}
}

// WithLogger sets the logger used on discard paths (default: discards).
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}
