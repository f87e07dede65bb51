package email

import (
	"context"
	"log/slog"
	"strings"

	"hyperlocal/config"
	"hyperlocal/internal/domain/constants"
	"hyperlocal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TransportParams holds dependencies for EmailTransport, injected by Fx
type TransportParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEmailTransport selects the transport named by email.provider. It returns
// nil when email is not configured; the email channel then fails every attempt.
func NewEmailTransport(params TransportParams) (service.EmailTransport, error) {
	cfg := params.Config.Email
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("Email not configured, email delivery disabled")

		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case constants.EmailProviderSMTP:
		logger.Info("Using SMTP email transport",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
			slog.Duration("connect_timeout", cfg.SMTP.ConnectTimeout),
			slog.Duration("socket_timeout", cfg.SMTP.SocketTimeout),
		)

		return NewSMTPTransport(cfg)

	case constants.EmailProviderSES:
		logger.Info("Using SES email transport", slog.String("region", cfg.SES.Region))

		return NewSESTransport(params.Ctx, cfg)

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}

// Module provides the email FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewEmailTransport,
		NewTemplateRenderer,
	),
)
