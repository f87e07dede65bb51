package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMethod records which channels delivered a notification.
type DeliveryMethod string

const (
	DeliveryMethodNone  DeliveryMethod = "none"
	DeliveryMethodEmail DeliveryMethod = "email"
	DeliveryMethodPush  DeliveryMethod = "push"
	DeliveryMethodBoth  DeliveryMethod = "both"
)

// Notification categories used by producers.
const (
	CategoryService  = "service"
	CategoryAlert    = "alert"
	CategoryEvent    = "event"
	CategoryFollowUp = "follow_up"
	CategorySystem   = "system"
)

// NotificationPayload is the immutable content routed to every recipient of one event.
type NotificationPayload struct {
	Title             string `json:"title"`
	Body              string `json:"body"`
	Link              string `json:"link,omitempty"`
	RenderedEmailBody string `json:"rendered_email_body,omitempty"` // Pre-rendered HTML; opaque to the core.
	Category          string `json:"category"`
}

// NotificationRecord is the persisted trace of a notification that reached a recipient.
type NotificationRecord struct {
	ID             uuid.UUID      `json:"id"`
	RecipientID    uuid.UUID      `json:"recipient_id"`
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Category       string         `json:"category"`
	Link           string         `json:"link"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Delivered      bool           `json:"delivered"`
	IsRead         bool           `json:"is_read"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewNotificationRecord builds the in-memory record for one recipient before any channel is tried.
func NewNotificationRecord(recipientID uuid.UUID, payload NotificationPayload, now time.Time) *NotificationRecord {
	return &NotificationRecord{
		ID:             uuid.New(),
		RecipientID:    recipientID,
		Title:          payload.Title,
		Body:           payload.Body,
		Category:       payload.Category,
		Link:           payload.Link,
		DeliveryMethod: DeliveryMethodNone,
		CreatedAt:      now,
	}
}

// MarkEmailDelivered records a successful email attempt.
func (n *NotificationRecord) MarkEmailDelivered() {
	n.DeliveryMethod = DeliveryMethodEmail
	n.Delivered = true
}

// MarkPushDelivered records a successful push attempt, upgrading to "both" after an email success.
func (n *NotificationRecord) MarkPushDelivered() {
	if n.DeliveryMethod == DeliveryMethodEmail {
		n.DeliveryMethod = DeliveryMethodBoth
	} else {
		n.DeliveryMethod = DeliveryMethodPush
	}
	n.Delivered = true
}
