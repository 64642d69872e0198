// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (database errors, connection failures) are returned as
// "internal server error" with details logged for debugging. Safe errors
// (validation and conflict errors) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()

	// Substrings that mark an error as user-facing. Everything else is
	// treated as internal.
	safeErrors := []string{
		"required",
		"invalid",
		"not found",
		"already exists",
		"already taken",
		"must be",
		"cannot be",
		"too long",
		"too short",
		"too many",
		"not allowed",
		"your own",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeErrors {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 5xx is always internal regardless of message content.
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
	} else {
		slog.Default().Error("internal server error",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
		JSON(w, code, map[string]string{"error": "internal server error"})
	}
}
