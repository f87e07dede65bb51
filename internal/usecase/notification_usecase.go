package usecase

import (
	"context"

	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput is a single-recipient notification request.
type CreateNotificationInput struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	Link        string    `json:"link,omitempty"`
	EmailHTML   string    `json:"email_html,omitempty"` // Pre-rendered email body; the default template is used when empty.
	SkipEmail   bool      `json:"skip_email"`           // Deliver in-app/push only.

	// Recipient, when set, is used as-is and the directory is not consulted.
	Recipient *entity.Recipient `json:"-"`
}

// NotificationUsecase defines the interface for notification delivery use cases
type NotificationUsecase interface {
	// Route delivers payload to every recipient concurrently and returns once all
	// attempts resolved. Per-recipient failures never fail the call.
	Route(ctx context.Context, recipients []*entity.Recipient, payload entity.NotificationPayload) (*entity.DeliveryReport, error)

	// CreateNotification delivers to one recipient with the same semantics as Route.
	// It returns a nil record without error when no channel delivered.
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.NotificationRecord, error)

	// DispatchAsync queues a Route call on the background dispatcher. The caller
	// only learns whether the job was accepted.
	DispatchAsync(recipients []*entity.Recipient, payload entity.NotificationPayload) error

	// DispatchEmail queues a plain email to one recipient. No record is persisted.
	DispatchEmail(recipient *entity.Recipient, payload entity.NotificationPayload) error

	// ListNotifications returns a recipient's notifications, newest first.
	ListNotifications(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error)

	// MarkAsRead flags one of the recipient's notifications as read.
	MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
}
