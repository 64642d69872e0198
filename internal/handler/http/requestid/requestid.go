// Package requestid assigns every request an ID that travels through the
// context, the response header and the structured logs, so one editor
// report can be matched to its log lines.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header used both for inbound propagation (a reverse
// proxy may already have assigned an ID) and for echoing the ID back.
const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request ID, or "" outside a request.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// Middleware adopts the inbound X-Request-ID when present and mints a UUID
// otherwise. The ID is set on the response before the handler runs so it is
// present even on error responses.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
