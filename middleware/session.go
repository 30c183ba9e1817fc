package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/sessionkit/sessionkit/core/clientsession"
	"github.com/sessionkit/sessionkit/core/sessiontransport"
	"github.com/sessionkit/sessionkit/pkg/logger"
)

// sessionContextKey stores the session in the request context.
type sessionContextKey struct{}

// SessionConfig configures the session middleware.
type SessionConfig struct {
	// Skip disables the middleware for specific requests.
	Skip func(r *http.Request) bool
	// Logger receives load/save problems (default: discards).
	Logger *slog.Logger
}

// Session creates middleware that loads the client-side session before the
// handler runs and writes it back if modified. A request with a tampered or
// malformed cookie proceeds with a fresh empty session.
//
// The session is saved just before the response headers are flushed, since
// Set-Cookie must precede the body. Handlers access it via GetSession:
//
//	sess, ok := middleware.GetSession(r)
func Session(store *sessiontransport.Store) func(http.Handler) http.Handler {
	return SessionWithConfig(store, SessionConfig{})
}

// SessionWithConfig creates the session middleware with custom configuration.
func SessionWithConfig(store *sessiontransport.Store, cfg SessionConfig) func(http.Handler) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Load(r)
			if err != nil {
				// Load already substituted an empty session; the request
				// continues as a first visit.
				log.Warn("session load failed",
					logger.Component("middleware"),
					logger.Error(err),
				)
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			r = r.WithContext(ctx)

			sw := &sessionWriter{
				ResponseWriter: w,
				save: func() {
					if err := store.Save(w, r, sess); err != nil {
						log.Error("session save failed",
							logger.Component("middleware"),
							logger.Error(err),
						)
					}
				},
			}
			next.ServeHTTP(sw, r)
			sw.flushSession()
		})
	}
}

// GetSession retrieves the session placed in the request context by the
// Session middleware.
func GetSession(r *http.Request) (*clientsession.Session, bool) {
	sess, ok := r.Context().Value(sessionContextKey{}).(*clientsession.Session)
	return sess, ok
}

// sessionWriter defers cookie emission until the handler first writes,
// guaranteeing Set-Cookie headers land before the status line.
type sessionWriter struct {
	http.ResponseWriter
	save  func()
	saved bool
}

func (w *sessionWriter) WriteHeader(status int) {
	w.flushSession()
	w.ResponseWriter.WriteHeader(status)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flushSession()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) flushSession() {
	if w.saved {
		return
	}
	w.saved = true
	w.save()
}
