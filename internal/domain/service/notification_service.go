package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken marks a push send rejected because the token is invalid or unregistered.
var ErrInvalidPushToken = errors.New("invalid or unregistered push token")

// PushService defines the interface for push messaging providers
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token.
	// Errors for rejected tokens wrap ErrInvalidPushToken.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
