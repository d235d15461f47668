package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/forms"
)

// RequestID adds a uuid to the request context.
//
// If key is zero, then NoopAdapter returns and this middleware does nothing.
func RequestID(key forms.Key) Adapter {
	if key == "" {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), key, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
