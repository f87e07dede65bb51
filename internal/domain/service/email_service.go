package service

import (
	"context"
)

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailTransport sends an email through a provider (SMTP relay, SES).
// Implementations must bound every network step with a timeout.
type EmailTransport interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailContext carries the values available to an email template.
type EmailContext struct {
	RecipientName string
	Title         string
	Body          string
	Link          string
	Category      string
}

// EmailRenderer renders an HTML email body. The result is opaque to the caller.
type EmailRenderer interface {
	Render(ctx context.Context, data EmailContext) (string, error)
}
