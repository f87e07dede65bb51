package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hyperlocal/config"
	deliverycontext "hyperlocal/internal/delivery/context"
	domainerrors "hyperlocal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFrom(c.Request().Context())
		assert.NotNil(t, deliverycontext.LoggerFrom(c.Request().Context(), nil))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LevelByStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	mw := NewLoggerMiddleware(logger, &config.Config{})
	e := echo.New()

	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String(), "successful requests log at debug")

	failed := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/notifications", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") })(failed)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":400`)
}

func TestLoggerMiddleware_DomainErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/recipients/x/notifications", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrRecipientNotFound, "lookup")
	})(c)

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
