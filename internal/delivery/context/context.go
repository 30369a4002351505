// Package context carries request correlation data through every delivery: HTTP requests,
// Pub/Sub pushes, scheduled jobs and wearable messages.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyCallerID  ContextKey = "caller_id"
	KeyOrigin    ContextKey = "origin"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Origin names the delivery a unit of work entered through.
type Origin string

const (
	OriginHTTP      Origin = "http"
	OriginWorker    Origin = "worker"
	OriginScheduler Origin = "scheduler"
	OriginMQTT      Origin = "mqtt"
)

// GetRequestID extracts the request ID from echo.Context, generating one when absent.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithCaller records the authenticated user and tags the request logger with it.
func WithCaller(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, KeyCallerID, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("caller_id", userID)))
	}

	return ctx
}

// GetCallerFromContext returns the authenticated user id, or "" for system work.
func GetCallerFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyCallerID).(string); ok {
		return id
	}

	return ""
}

// GetOrigin returns the delivery that started the work, defaulting to HTTP.
func GetOrigin(ctx context.Context) Origin {
	if origin, ok := ctx.Value(KeyOrigin).(Origin); ok {
		return origin
	}

	return OriginHTTP
}

func WithOrigin(ctx context.Context, origin Origin) context.Context {
	return context.WithValue(ctx, KeyOrigin, origin)
}

// Begin starts a correlated unit of work outside an HTTP request: a fresh request id,
// the origin, and a logger carrying both plus the given attributes.
func Begin(parent context.Context, logger *slog.Logger, origin Origin, attrs ...any) context.Context {
	requestID := uuid.New().String()
	scoped := logger.With(slog.String("request_id", requestID), slog.String("origin", string(origin))).With(attrs...)

	ctx := WithOrigin(parent, origin)
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, scoped)
}
