package middleware

import (
	"net/http"
)

// BodyLimit caps how many bytes of a request body downstream handlers can read,
// backstopping the per-extractor size limits with [http.MaxBytesReader].
//
// If max is at or below zero, NoopAdapter returns and this middleware does nothing.
func BodyLimit(max int64) Adapter {
	if max <= 0 {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, max)
			h.ServeHTTP(w, r)
		})
	}
}
