// Package http hosts the HTTP handler tree and its shared middleware.
package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"resort-cms/internal/handler/http/pathutil"
	"resort-cms/internal/handler/http/requestid"
	"resort-cms/internal/handler/http/respond"
	"resort-cms/internal/handler/http/responsewriter"
	"resort-cms/internal/observability/metrics"
)

// Logging returns middleware that logs each completed request with
// structured fields, including the request ID for cross-log correlation.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := responsewriter.Wrap(w)
			next.ServeHTTP(wrapped, r)

			logger.Info("request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", wrapped.StatusCode()),
				slog.Int("bytes", wrapped.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Recover returns middleware that catches panics, logs them with the stack
// trace, and returns a 500 response instead of crashing the server.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))

					logger.Error("panic recovered",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody returns middleware that caps request body size.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics records request counts and latency per method and normalized
// path. Paths are normalized so article IDs and slugs do not explode the
// label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		normalizedPath := pathutil.NormalizePath(r.URL.Path)

		wrapped := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(wrapped.StatusCode())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, normalizedPath).Observe(duration)
	})
}

// WriteLimiter applies per-client token bucket rate limiting to mutating
// requests (POST, PUT, PATCH, DELETE). Reads pass through untouched: the
// public site fans out many GETs per page view and must not be throttled
// alongside authoring traffic.
type WriteLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type clientLimiter struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewWriteLimiter creates a limiter allowing rps sustained mutations per
// client with the given burst. Idle client buckets are dropped after an
// hour to bound memory.
func NewWriteLimiter(rps rate.Limit, burst int) *WriteLimiter {
	return &WriteLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rps,
		burst:   burst,
		idleTTL: time.Hour,
	}
}

// Limit enforces the rate limit, returning 429 when a client's bucket is
// exhausted.
func (wl *WriteLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			next.ServeHTTP(w, r)
			return
		}

		if !wl.allow(clientKey(r)) {
			respond.SafeError(w, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded: too many requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (wl *WriteLimiter) allow(key string) bool {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	now := time.Now()
	cl, ok := wl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(wl.rps, wl.burst)}
		wl.clients[key] = cl
	}
	cl.seen = now

	// Opportunistic cleanup of idle buckets.
	for k, c := range wl.clients {
		if now.Sub(c.seen) > wl.idleTTL {
			delete(wl.clients, k)
		}
	}

	return cl.limiter.Allow()
}

// clientKey identifies the client for rate limiting purposes. Behind a
// reverse proxy the X-Real-IP header carries the original address.
func clientKey(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
