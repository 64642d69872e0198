// Package logging provides structured logging utilities on top of log/slog.
// It offers helpers for creating consistently configured loggers and for
// enriching them with request-scoped context.
package logging

import (
	"context"
	"log/slog"
	"os"

	"resort-cms/internal/handler/http/requestid"
)

// NewLogger creates a structured logger with JSON output.
// The log level is controlled via the LOG_LEVEL environment variable
// (debug, info, warn, error); the default is info.
func NewLogger() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler)
}

// NewTextLogger creates a logger with human-readable text output, useful for
// local development.
func NewTextLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger that includes the request ID from the
// context, enabling request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
