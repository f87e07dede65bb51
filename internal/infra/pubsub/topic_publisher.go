package pubsub

import (
	"context"
	"log/slog"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// TopicPublisher sends delivery events to a Google Cloud Pub/Sub topic.
type TopicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewTopicPublisher connects to cfg.ProjectID and verifies cfg.TopicID exists
// before accepting events.
func NewTopicPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*TopicPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	return &TopicPublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *TopicPublisher) PublishDeliveryEvent(ctx context.Context, event *entity.DeliveryEvent) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attrs,
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish to %s", p.topic)
	}

	p.logger.Debug("[PubSub] Delivery event published",
		slog.String("event_id", msg.id),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages, then closes the client.
func (p *TopicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
