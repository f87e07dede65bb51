package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"hyperlocal/config"
	"hyperlocal/internal/delivery"
	apimiddleware "hyperlocal/internal/delivery/api/middleware"
	"hyperlocal/internal/delivery/api/router"
	"hyperlocal/internal/delivery/api/validator"
	"hyperlocal/internal/delivery/middleware"
	"hyperlocal/internal/domain/lifecycle"
	"hyperlocal/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// Server exposes the notification API over HTTP/1.1 and cleartext HTTP/2.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the API server. Listening starts in Serve and stops with
// the fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &Server{cfg: params.Cfg, logger: params.Logger, echo: e}
	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

// newEcho applies timeouts and the middleware chain. Order matters: the request
// ID is assigned before the access logger runs so every line carries it.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	return e
}

// Serve blocks until the server is shut down.
func (s *Server) Serve(context.Context) error {
	addr := net.JoinHostPort("", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("[API] Listening", slog.String("addr", addr))

	err := s.echo.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "api server")
	}

	return nil
}

func (s *Server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[API] Shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
