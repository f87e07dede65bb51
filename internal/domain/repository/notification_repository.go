// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrRecipientNotFound is returned when a directory lookup by ID finds nothing.
	ErrRecipientNotFound = errors.New("recipient not found")
)

// NotificationRepository defines the interface for notification record persistence.
type NotificationRepository interface {
	// CreateNotification persists a delivered notification record. Called once per record.
	CreateNotification(ctx context.Context, record *entity.NotificationRecord) error

	// FindNotificationsByRecipient lists a recipient's notifications, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error)

	// MarkAsRead flags one of the recipient's notifications as read.
	MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
}
