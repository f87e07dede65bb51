// Package context carries request-scoped values (request ID, logger) from the
// HTTP edge into usecases and background tasks.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

const echoRequestIDKey = "request_id"

// WithRequestID stores id on ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request ID on ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger stores a request-scoped logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the logger on ctx, or fallback when none was stored.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// Bind attaches id to both the echo context and its request context, together
// with a logger tagged with that id.
func Bind(c echo.Context, id string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, id)
	ctx := WithRequestID(c.Request().Context(), id)
	ctx = WithLogger(ctx, logger.With(slog.String("request_id", id)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// EchoRequestID returns the ID bound to c. Requests that bypassed the request
// ID middleware get a fresh one.
func EchoRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}
