package service

import (
	"context"

	"hyperlocal/internal/domain/entity"
)

// DeliveryChannel delivers a payload to one recipient over one mechanism.
// Implementations never return errors: failures are reported in the outcome so
// that each recipient's attempt stays independent of the others.
type DeliveryChannel interface {
	Name() entity.Channel
	Send(ctx context.Context, recipient *entity.Recipient, payload entity.NotificationPayload) entity.DeliveryOutcome
}
