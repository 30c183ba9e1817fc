package sessiontransport

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sessionkit/sessionkit/core/clientsession"
	"github.com/sessionkit/sessionkit/pkg/logger"
)

const (
	// DefaultCookieName is the base name for session partition cookies.
	DefaultCookieName = "session"
	// DefaultMaxCookieSize bounds one partition's value length, leaving
	// headroom under the common 4KB whole-cookie browser limit for the
	// name, attributes, and header overhead.
	DefaultMaxCookieSize = 2048
)

// Store reads and writes client-side sessions as ordered partition cookies.
// An envelope that fits the size limit travels as a single cookie
// "<name>_0"; larger envelopes span "<name>_0" ... "<name>_N". Partitions
// are reassembled in index order, which preserves the codec's concatenation
// contract.
//
// A Store holds only immutable configuration and is safe for concurrent use.
type Store struct {
	codec         *clientsession.Codec
	name          string
	maxCookieSize int
	opts          cookieOptions
	log           *slog.Logger
}

// New creates a Store around the given codec.
func New(codec *clientsession.Codec, opts ...Option) (*Store, error) {
	if codec == nil {
		return nil, ErrNoCodec
	}

	s := &Store{
		codec:         codec,
		name:          DefaultCookieName,
		maxCookieSize: DefaultMaxCookieSize,
		opts: cookieOptions{
			path:     "/",
			httpOnly: true,
			sameSite: http.SameSiteLaxMode,
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load reassembles the session from the request's partition cookies. A
// request without session cookies yields an empty session. Decode failures
// also yield an empty session so handlers always get a usable one, with the
// codec error returned alongside for callers that want to distinguish.
func (s *Store) Load(r *http.Request) (*clientsession.Session, error) {
	fragments := s.fragments(r)

	sess, err := s.codec.Deserialize(r.Context(), fragments...)
	if err != nil {
		s.log.Warn("session cookie discarded",
			logger.Component("sessiontransport"),
			logger.CookieName(s.name),
			logger.Error(err),
		)
		return clientsession.NewSession(), err
	}
	return sess, nil
}

// Save serializes the session and writes its partitions as cookies. Stale
// partitions from a previously larger session are expired so the next
// request cannot reassemble a mixed envelope. Unmodified sessions are left
// untouched. Save must run before the response body is written.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, sess *clientsession.Session) error {
	if !sess.IsModified() {
		return nil
	}

	partitions, err := s.codec.SerializeChunked(r.Context(), sess.Entries(), s.maxCookieSize)
	if err != nil {
		return err
	}

	for i, partition := range partitions {
		http.SetCookie(w, s.cookie(s.partitionName(i), partition, s.opts.maxAge))
	}
	s.expireFrom(w, r, len(partitions))
	return nil
}

// Clear expires every partition cookie present on the request.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) {
	s.expireFrom(w, r, 0)
}

// fragments collects partition cookie values in index order, stopping at the
// first gap.
func (s *Store) fragments(r *http.Request) []string {
	var values []string
	for i := 0; ; i++ {
		c, err := r.Cookie(s.partitionName(i))
		if err != nil {
			return values
		}
		values = append(values, c.Value)
	}
}

// expireFrom expires request partitions with index >= from.
func (s *Store) expireFrom(w http.ResponseWriter, r *http.Request, from int) {
	for i := from; ; i++ {
		name := s.partitionName(i)
		if _, err := r.Cookie(name); err != nil {
			return
		}
		expired := s.cookie(name, "", -1)
		expired.Expires = time.Unix(0, 0)
		http.SetCookie(w, expired)
	}
}

func (s *Store) partitionName(i int) string {
	return fmt.Sprintf("%s_%d", s.name, i)
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     s.opts.path,
		Domain:   s.opts.domain,
		MaxAge:   maxAge,
		Secure:   s.opts.secure,
		HttpOnly: s.opts.httpOnly,
		SameSite: s.opts.sameSite,
	}
}
