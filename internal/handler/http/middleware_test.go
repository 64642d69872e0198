package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWriteLimiter_ThrottlesMutationsOnly(t *testing.T) {
	// Zero refill: only the burst is available.
	wl := NewWriteLimiter(rate.Limit(0), 3)
	handler := wl.Limit(okHandler())

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/admin/articles", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		if code := post(); code != http.StatusOK {
			t.Fatalf("request %d status=%d, want 200 within burst", i+1, code)
		}
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("status=%d, want 429 once burst is spent", code)
	}

	// Reads are never throttled, even for the exhausted client.
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status=%d, want 200", rec.Code)
	}
}

func TestWriteLimiter_PerClientBuckets(t *testing.T) {
	wl := NewWriteLimiter(rate.Limit(0), 1)
	handler := wl.Limit(okHandler())

	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/articles", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post("10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first client status=%d", code)
	}
	if code := post("10.0.0.1:6000"); code != http.StatusTooManyRequests {
		t.Fatal("same IP on a new port must share the bucket")
	}
	if code := post("10.0.0.2:5000"); code != http.StatusOK {
		t.Fatal("a different IP must get its own bucket")
	}
}

func TestWriteLimiter_PrefersRealIPHeader(t *testing.T) {
	wl := NewWriteLimiter(rate.Limit(0), 1)
	handler := wl.Limit(okHandler())

	post := func(realIP string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/articles", nil)
		req.RemoteAddr = "127.0.0.1:9000" // the proxy
		req.Header.Set("X-Real-IP", realIP)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("status=%d", code)
	}
	if code := post("203.0.113.7"); code != http.StatusTooManyRequests {
		t.Fatal("same forwarded IP must share the bucket")
	}
	if code := post("203.0.113.8"); code != http.StatusOK {
		t.Fatal("different forwarded IP must not be throttled")
	}
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatal("panic value leaked to the response body")
	}
}

func TestLimitRequestBody(t *testing.T) {
	handler := LimitRequestBody(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	small := httptest.NewRequest(http.MethodPost, "/admin/articles", strings.NewReader("tiny"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, small)
	if rec.Code != http.StatusOK {
		t.Fatalf("small body status=%d", rec.Code)
	}

	big := httptest.NewRequest(http.MethodPost, "/admin/articles", strings.NewReader(strings.Repeat("x", 64)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, big)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body status=%d", rec.Code)
	}
}

func TestLogging_PassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status=%d, wrapped writer must not alter the response", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("body=%q", rec.Body.String())
	}
}
