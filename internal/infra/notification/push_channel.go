package notification

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPushTimeout = 10 * time.Second

type pushChannel struct {
	push    service.PushService
	logger  *slog.Logger
	timeout time.Duration
	baseURL string
}

// PushChannelParams holds dependencies for the push delivery channel
type PushChannelParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Push   service.PushService `optional:"true"`
}

// NewPushChannel creates the push DeliveryChannel.
func NewPushChannel(params PushChannelParams) service.DeliveryChannel {
	timeout := defaultPushTimeout
	if params.Config.Firebase != nil && params.Config.Firebase.SendTimeout > 0 {
		timeout = params.Config.Firebase.SendTimeout
	}

	baseURL := ""
	if params.Config.Notification != nil {
		baseURL = params.Config.Notification.BaseURL
	}

	return &pushChannel{
		push:    params.Push,
		logger:  params.Logger,
		timeout: timeout,
		baseURL: baseURL,
	}
}

func (c *pushChannel) Name() entity.Channel {
	return entity.ChannelPush
}

// Send delivers a structured notification with the redirect URL in the data payload.
// Failures are not retried.
func (c *pushChannel) Send(ctx context.Context, recipient *entity.Recipient, payload entity.NotificationPayload) entity.DeliveryOutcome {
	if recipient == nil || !recipient.HasPushToken() {
		return entity.Skipped(entity.ChannelPush)
	}
	if c.push == nil {
		return entity.Failed(entity.ChannelPush, "push transport not configured")
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data := map[string]string{
		"category": payload.Category,
		"url":      util.ResolveLink(c.baseURL, payload.Link),
	}

	err := c.push.SendSingleNotification(sendCtx, strings.TrimSpace(recipient.PushToken), payload.Title, payload.Body, data)
	if err == nil {
		return entity.Sent(entity.ChannelPush)
	}

	outcome := entity.Failed(entity.ChannelPush, err.Error())
	if errors.Is(err, service.ErrInvalidPushToken) {
		outcome.InvalidToken = true
	}

	c.logger.Warn("[Push] Delivery failed",
		slog.String("recipient_id", recipient.ID.String()),
		slog.Bool("invalid_token", outcome.InvalidToken),
		slog.Any("error", err),
	)

	return outcome
}
