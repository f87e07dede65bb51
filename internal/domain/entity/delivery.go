package entity

import (
	"github.com/google/uuid"
)

// Channel identifies a delivery mechanism.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// DeliveryStatus is the result of one channel attempt for one recipient.
type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusSkipped DeliveryStatus = "skipped" // Recipient has no address for the channel; not an error.
)

// DeliveryOutcome reports a single channel attempt.
type DeliveryOutcome struct {
	Channel      Channel        `json:"channel"`
	Status       DeliveryStatus `json:"status"`
	Reason       string         `json:"reason,omitempty"`
	InvalidToken bool           `json:"invalid_token,omitempty"` // Push token rejected as invalid or unregistered.
}

// Sent builds a successful outcome.
func Sent(channel Channel) DeliveryOutcome {
	return DeliveryOutcome{Channel: channel, Status: DeliveryStatusSent}
}

// Failed builds a failed outcome with a reason.
func Failed(channel Channel, reason string) DeliveryOutcome {
	return DeliveryOutcome{Channel: channel, Status: DeliveryStatusFailed, Reason: reason}
}

// Skipped builds the neutral outcome for a recipient without the required address.
func Skipped(channel Channel) DeliveryOutcome {
	return DeliveryOutcome{Channel: channel, Status: DeliveryStatusSkipped}
}

// Succeeded reports whether the attempt delivered.
func (o DeliveryOutcome) Succeeded() bool {
	return o.Status == DeliveryStatusSent
}

// DeliveryReport summarises one routing call for its caller. It is never persisted.
// EmailCount counts recipients with an email address; PushCount counts recipients
// reachable only by push token.
type DeliveryReport struct {
	RecipientCount int `json:"recipient_count"`
	EmailCount     int `json:"email_count"`
	PushCount      int `json:"push_count"`
}

// DeliveryEvent is the summary published after a routing call completes.
type DeliveryEvent struct {
	RequestID      string    `json:"request_id,omitempty"`
	EventID        uuid.UUID `json:"event_id"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	RecipientCount int       `json:"recipient_count"`
	EmailCount     int       `json:"email_count"`
	PushCount      int       `json:"push_count"`
	DeliveredCount int       `json:"delivered_count"`
	PersistFailed  int       `json:"persist_failed"`
}
