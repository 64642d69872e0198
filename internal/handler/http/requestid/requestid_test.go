package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var ctxID string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	headerID := rec.Header().Get(RequestIDHeader)
	if headerID == "" {
		t.Fatal("no request ID in response header")
	}
	if headerID != ctxID {
		t.Fatalf("header ID %q != context ID %q", headerID, ctxID)
	}
	if _, err := uuid.Parse(headerID); err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", headerID, err)
	}
}

func TestMiddleware_PropagatesExistingID(t *testing.T) {
	var ctxID string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ctxID != "upstream-id-42" {
		t.Fatalf("context ID=%q, want the upstream value", ctxID)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "upstream-id-42" {
		t.Fatalf("header ID=%q, want the upstream value", got)
	}
}

func TestFromContext_Empty(t *testing.T) {
	if got := FromContext(context.Background()); got != "" {
		t.Fatalf("FromContext on empty context = %q", got)
	}
}
