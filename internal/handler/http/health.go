package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"resort-cms/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler handles health check requests. It pings the database and
// reports the scheduled publisher's run state.
type HealthHandler struct {
	DB      *sql.DB
	Version string

	// PublisherRunning reports whether the scheduled publisher timer is
	// active. Optional; nil skips the check.
	PublisherRunning func() bool
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	healthy := true

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		healthy = false
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "ping failed"}
	} else {
		checks["database"] = CheckStatus{Status: "healthy"}
	}

	if h.PublisherRunning != nil {
		if h.PublisherRunning() {
			checks["scheduled_publisher"] = CheckStatus{Status: "healthy"}
		} else {
			// The API can serve traffic without the publisher, so this
			// degrades the report without failing the endpoint.
			checks["scheduled_publisher"] = CheckStatus{Status: "unhealthy", Message: "not running"}
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}
