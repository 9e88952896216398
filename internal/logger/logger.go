package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	captureIDKey ctxKey = "captureID"
	requestIDKey ctxKey = "requestID"
)

// Init configures the default slog logger from the given config.
func Init(cfg Config) {
	InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter configures the default slog logger writing to w.
// Split out from Init so tests can capture output.
func InitWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler.WithAttrs(cfg.BaseAttributes()))
	slog.SetDefault(logger)
}

// GenerateRequestID creates a new UUID for tracing a unit of work.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithCaptureID returns a new context carrying the capture id so that every
// log line emitted while handling one capture can be correlated.
func WithCaptureID(ctx context.Context, captureID int64) context.Context {
	return context.WithValue(ctx, captureIDKey, captureID)
}

// CaptureIDFromContext extracts the capture id from the context, if present.
func CaptureIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(captureIDKey)
	if v == nil {
		return 0, false
	}
	if id, ok := v.(int64); ok {
		return id, true
	}
	return 0, false
}

// WithRequestID returns a new context carrying a request id for HTTP tracing.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request id from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the capture_id and request_id
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := CaptureIDFromContext(ctx); ok {
		log = log.With(AttrKeyCaptureID, id)
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	return log
}
