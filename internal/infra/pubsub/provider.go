package pubsub

import (
	"context"
	"log/slog"

	"hyperlocal/config"
	"hyperlocal/internal/domain/constants"
	"hyperlocal/internal/domain/entity"
	"hyperlocal/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logOnlyPublisher records events in the log when no transport is configured.
type logOnlyPublisher struct {
	logger *slog.Logger
}

func (p logOnlyPublisher) PublishDeliveryEvent(_ context.Context, event *entity.DeliveryEvent) error {
	p.logger.Debug("[PubSub] Publishing disabled",
		slog.String("event_id", event.EventID.String()),
		slog.Int("delivered", event.DeliveredCount),
	)

	return nil
}

func (logOnlyPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("[PubSub] Not configured, delivery events are logged only")

		return logOnlyPublisher{logger: params.Logger}, nil
	}

	publisher, err := open(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("[PubSub] Delivery event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func open(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewPushPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		publisher, err := NewTopicPublisher(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		return publisher, nil
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// Module provides the delivery event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
