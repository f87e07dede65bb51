package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"hyperlocal/config"
	deliverycontext "hyperlocal/internal/delivery/context"
	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/errors"
	"hyperlocal/internal/infra/metrics"
	"hyperlocal/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRouteConcurrency = 32
	eventPublishTimeout     = 5 * time.Second

	taskRoute = "route"
	taskEmail = "email"
)

type notificationService struct {
	logger           *slog.Logger
	metrics          *metrics.Metrics
	recipientRepo    repository.RecipientRepository
	notificationRepo repository.NotificationRepository
	channels         map[entity.Channel]service.DeliveryChannel
	dispatcher       service.TaskDispatcher
	publisher        service.EventPublisher
	maxConcurrency   int
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for the notification router, injected by Fx
type NotificationServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
	RecipientRepo    repository.RecipientRepository
	NotificationRepo repository.NotificationRepository
	Channels         []service.DeliveryChannel `group:"channels"`
	Dispatcher       service.TaskDispatcher
	Publisher        service.EventPublisher `optional:"true"`
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	channels := make(map[entity.Channel]service.DeliveryChannel, len(params.Channels))
	for _, ch := range params.Channels {
		channels[ch.Name()] = ch
	}

	concurrency := defaultRouteConcurrency
	if params.Config != nil && params.Config.Notification != nil && params.Config.Notification.MaxConcurrency > 0 {
		concurrency = params.Config.Notification.MaxConcurrency
	}

	return &notificationService{
		logger:           params.Logger,
		metrics:          params.Metrics,
		recipientRepo:    params.RecipientRepo,
		notificationRepo: params.NotificationRepo,
		channels:         channels,
		dispatcher:       params.Dispatcher,
		publisher:        params.Publisher,
		maxConcurrency:   concurrency,
		now:              time.Now,
	}
}

func (s *notificationService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, s.logger)
}

// Route fans the payload out to every recipient and waits for all of them.
// Delivery runs on a context detached from the caller, so a cancelled request
// cannot abort sends already in flight.
func (s *notificationService) Route(
	ctx context.Context,
	recipients []*entity.Recipient,
	payload entity.NotificationPayload,
) (*entity.DeliveryReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "route not started")
	}

	logger := s.getLogger(ctx)
	start := s.now()
	sendCtx := context.WithoutCancel(ctx)

	report := &entity.DeliveryReport{}
	var delivered, persistFailed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrency)

	for _, recipient := range recipients {
		if recipient == nil {
			continue
		}

		report.RecipientCount++
		switch {
		case recipient.HasEmail():
			report.EmailCount++
		case recipient.HasPushToken():
			report.PushCount++
		}

		g.Go(func() error {
			record, err := s.deliver(sendCtx, logger, recipient, payload, false)
			if err != nil {
				persistFailed.Add(1)
				logger.Error("[Router] Delivered notification not recorded",
					slog.String("recipient_id", recipient.ID.String()),
					slog.Any("error", err),
				)

				return nil
			}
			if record != nil {
				delivered.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	elapsed := s.now().Sub(start)
	s.metrics.ObserveRoute(report.RecipientCount, elapsed)

	logger.Info("[Router] Route completed",
		slog.String("category", payload.Category),
		slog.Int("recipients", report.RecipientCount),
		slog.Int("email", report.EmailCount),
		slog.Int("push", report.PushCount),
		slog.Int64("delivered", delivered.Load()),
		slog.Int64("persist_failed", persistFailed.Load()),
		slog.Duration("elapsed", elapsed),
	)

	s.publishEvent(sendCtx, logger, &entity.DeliveryEvent{
		RequestID:      deliverycontext.RequestIDFrom(ctx),
		EventID:        uuid.New(),
		Category:       payload.Category,
		Title:          payload.Title,
		RecipientCount: report.RecipientCount,
		EmailCount:     report.EmailCount,
		PushCount:      report.PushCount,
		DeliveredCount: int(delivered.Load()),
		PersistFailed:  int(persistFailed.Load()),
	})

	return report, nil
}

// deliver runs email then push for one recipient and persists the record once
// if any channel succeeded. A nil record with nil error means nothing was delivered.
func (s *notificationService) deliver(
	ctx context.Context,
	logger *slog.Logger,
	recipient *entity.Recipient,
	payload entity.NotificationPayload,
	skipEmail bool,
) (*entity.NotificationRecord, error) {
	record := entity.NewNotificationRecord(recipient.ID, payload, s.now())

	if !skipEmail && recipient.HasEmail() {
		if s.send(ctx, logger, entity.ChannelEmail, recipient, payload).Succeeded() {
			record.MarkEmailDelivered()
		}
	}

	if recipient.HasPushToken() {
		if s.send(ctx, logger, entity.ChannelPush, recipient, payload).Succeeded() {
			record.MarkPushDelivered()
		}
	}

	if !record.Delivered {
		return nil, nil
	}

	err := s.notificationRepo.CreateNotification(ctx, record)
	s.metrics.ObservePersist(err)
	if err != nil {
		return nil, domainerrors.NewPersistenceError("create notification", err)
	}

	return record, nil
}

func (s *notificationService) send(
	ctx context.Context,
	logger *slog.Logger,
	name entity.Channel,
	recipient *entity.Recipient,
	payload entity.NotificationPayload,
) entity.DeliveryOutcome {
	ch, ok := s.channels[name]
	if !ok {
		outcome := entity.Failed(name, "channel not registered")
		s.metrics.ObserveDelivery(outcome)

		return outcome
	}

	outcome := ch.Send(ctx, recipient, payload)
	s.metrics.ObserveDelivery(outcome)

	if outcome.Status == entity.DeliveryStatusFailed {
		logger.Warn("[Router] Channel delivery failed",
			slog.String("recipient_id", recipient.ID.String()),
			slog.String("channel", string(name)),
			slog.String("reason", outcome.Reason),
			slog.Bool("invalid_token", outcome.InvalidToken),
		)
	}

	return outcome
}

func (s *notificationService) publishEvent(ctx context.Context, logger *slog.Logger, event *entity.DeliveryEvent) {
	if s.publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, eventPublishTimeout)
	defer cancel()

	if err := s.publisher.PublishDeliveryEvent(pubCtx, event); err != nil {
		logger.Warn("[Router] Failed to publish delivery event",
			slog.String("event_id", event.EventID.String()),
			slog.Any("error", err),
		)
	}
}

// CreateNotification delivers to a single recipient looked up by ID.
func (s *notificationService) CreateNotification(
	ctx context.Context,
	input *usecase.CreateNotificationInput,
) (*entity.NotificationRecord, error) {
	logger := s.getLogger(ctx)

	recipient := input.Recipient
	if recipient == nil {
		found, err := s.recipientRepo.FindRecipientByID(ctx, input.RecipientID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipientNotFound) {
				return nil, domainerrors.ErrRecipientNotFound
			}

			return nil, domainerrors.NewDependencyError(recipientDirectory, err)
		}
		recipient = found
	}

	payload := entity.NotificationPayload{
		Title:             input.Title,
		Body:              input.Body,
		Link:              input.Link,
		RenderedEmailBody: input.EmailHTML,
		Category:          input.Category,
	}

	record, err := s.deliver(context.WithoutCancel(ctx), logger, recipient, payload, input.SkipEmail)
	if err != nil {
		logger.Error("[Router] Delivered notification not recorded",
			slog.String("recipient_id", recipient.ID.String()),
			slog.Any("error", err),
		)

		return nil, nil
	}

	return record, nil
}

// DispatchAsync queues a Route call. Only acceptance is reported back.
func (s *notificationService) DispatchAsync(recipients []*entity.Recipient, payload entity.NotificationPayload) error {
	err := s.dispatcher.Submit(taskRoute, func(ctx context.Context) {
		if _, err := s.Route(ctx, recipients, payload); err != nil {
			s.logger.Error("[Router] Background route failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return errors.Wrap(err, "failed to queue route")
	}

	return nil
}

// DispatchEmail queues a plain email for one recipient without recording it.
func (s *notificationService) DispatchEmail(recipient *entity.Recipient, payload entity.NotificationPayload) error {
	if recipient == nil || !recipient.HasEmail() {
		return nil
	}

	err := s.dispatcher.Submit(taskEmail, func(ctx context.Context) {
		s.send(ctx, s.logger, entity.ChannelEmail, recipient, payload)
	})
	if err != nil {
		return errors.Wrap(err, "failed to queue email")
	}

	return nil
}

// ListNotifications returns a recipient's notifications, newest first.
func (s *notificationService) ListNotifications(
	ctx context.Context,
	recipientID uuid.UUID,
	limit, offset int,
) ([]*entity.NotificationRecord, error) {
	records, err := s.notificationRepo.FindNotificationsByRecipient(ctx, recipientID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return records, nil
}

// MarkAsRead flags one notification as read.
func (s *notificationService) MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkAsRead(ctx, recipientID, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}
