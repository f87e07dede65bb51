package service

import (
	"context"

	"hyperlocal/internal/domain/entity"
)

// EventPublisher defines the interface for publishing delivery summaries to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes the summary of a completed routing call
	PublishDeliveryEvent(ctx context.Context, event *entity.DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
