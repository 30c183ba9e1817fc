// Package sessiontransport carries client-side sessions over HTTP cookies.
//
// The codec in core/clientsession produces envelopes that may exceed browser
// cookie limits; Store splits them across ordered partition cookies named
// "<name>_0" through "<name>_N" and reassembles them in index order on the
// next request.
//
// # Usage
//
//	store, err := sessiontransport.New(codec,
//		sessiontransport.WithCookieName("session"),
//		sessiontransport.WithSecure(true),
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		sess, _ := store.Load(r)
//		sess.Set("user", "alice")
//		if err := store.Save(w, r, sess); err != nil {
//			// ...
//		}
//		// write response body after Save
//	}
//
// Save skips unmodified sessions and expires leftover partitions when the
// session shrinks, so a stale "<name>_3" from a previously larger envelope
// can never corrupt reassembly.
//
// # Environment configuration
//
// NewFromConfig builds the signer, optional encryption, codec, and store from
// a Config struct populated via env tags (see core/config):
//
//	var cfg sessiontransport.Config
//	config.MustLoad(&cfg)
//	store, err := sessiontransport.NewFromConfig(cfg, valuecodec.JSON{})
package sessiontransport
