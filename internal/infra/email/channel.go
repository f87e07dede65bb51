package email

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/util"

	"go.uber.org/fx"
)

// Upper bound for one email attempt including rendering; the transport applies
// its own finer-grained network timeouts inside it.
const defaultSendTimeout = 30 * time.Second

type emailChannel struct {
	transport service.EmailTransport
	renderer  service.EmailRenderer
	logger    *slog.Logger
	baseURL   string
	timeout   time.Duration
}

// ChannelParams holds dependencies for the email delivery channel
type ChannelParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Transport service.EmailTransport `optional:"true"`
	Renderer  service.EmailRenderer
}

// NewChannel creates the email DeliveryChannel.
func NewChannel(params ChannelParams) service.DeliveryChannel {
	baseURL := ""
	if params.Config.Notification != nil {
		baseURL = params.Config.Notification.BaseURL
	}

	return &emailChannel{
		transport: params.Transport,
		renderer:  params.Renderer,
		logger:    params.Logger,
		baseURL:   baseURL,
		timeout:   defaultSendTimeout,
	}
}

func (c *emailChannel) Name() entity.Channel {
	return entity.ChannelEmail
}

// Send renders and sends one email. It never returns an error; transport
// failures come back as a failed outcome with the reason.
func (c *emailChannel) Send(ctx context.Context, recipient *entity.Recipient, payload entity.NotificationPayload) entity.DeliveryOutcome {
	if recipient == nil || !recipient.HasEmail() {
		return entity.Skipped(entity.ChannelEmail)
	}
	if c.transport == nil {
		return entity.Failed(entity.ChannelEmail, "email transport not configured")
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	link := util.ResolveLink(c.baseURL, payload.Link)

	msg := service.EmailMessage{
		To:       strings.TrimSpace(recipient.EmailAddress),
		Subject:  payload.Title,
		HTMLBody: c.htmlBody(sendCtx, recipient, payload, link),
		TextBody: plainBody(payload.Body, link),
	}

	if err := c.transport.Send(sendCtx, msg); err != nil {
		c.logger.Warn("[Email] Delivery failed",
			slog.String("recipient_id", recipient.ID.String()),
			slog.Any("error", err),
		)

		return entity.Failed(entity.ChannelEmail, err.Error())
	}

	return entity.Sent(entity.ChannelEmail)
}

func (c *emailChannel) htmlBody(ctx context.Context, recipient *entity.Recipient, payload entity.NotificationPayload, link string) string {
	if payload.RenderedEmailBody != "" {
		return payload.RenderedEmailBody
	}

	if c.renderer != nil {
		rendered, err := c.renderer.Render(ctx, service.EmailContext{
			RecipientName: recipient.Name,
			Title:         payload.Title,
			Body:          payload.Body,
			Link:          link,
			Category:      payload.Category,
		})
		if err == nil {
			return rendered
		}

		c.logger.Warn("[Email] Render failed, falling back to plain wrap", slog.Any("error", err))
	}

	return "<p>" + strings.ReplaceAll(html.EscapeString(payload.Body), "\n", "<br>") + "</p>"
}

func plainBody(body, link string) string {
	if link == "" {
		return body
	}

	return body + "\n\n" + link
}
