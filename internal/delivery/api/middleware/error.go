package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"hyperlocal/internal/delivery/api/response"
	deliverycontext "hyperlocal/internal/delivery/context"
	domainerrors "hyperlocal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// retryAfterSeconds is advertised when a downstream dependency is unavailable.
const retryAfterSeconds = 30

// ErrorMiddleware renders handler errors as JSON error envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

type httpFailure struct {
	status  int
	code    string
	message string
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	failure := classify(err)
	if failure.status >= http.StatusInternalServerError {
		deliverycontext.LoggerFrom(c.Request().Context(), m.logger).Error("[API] Request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Int("status", failure.status),
			slog.Any("error", err),
		)
	}

	if domainerrors.IsDependencyError(err) {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}

	_ = response.Error(c, failure.status, failure.code, failure.message, nil)
}

func classify(err error) httpFailure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return httpFailure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return httpFailure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	return httpFailure{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: "Internal server error, please try again later",
	}
}
