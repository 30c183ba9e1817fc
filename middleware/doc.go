// Package middleware provides net/http middleware for client-side sessions.
//
// Session wires a sessiontransport.Store into the request lifecycle: the
// session is loaded before the handler, exposed through the request context,
// and written back as cookies right before the first response write. RequestID
// tags each request with a unique identifier for log correlation.
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		sess, _ := middleware.GetSession(r)
//		sess.Set("visits", visits+1)
//	})
//
//	handler := middleware.RequestID()(middleware.Session(store)(mux))
//	http.ListenAndServe(":8080", handler)
package middleware
