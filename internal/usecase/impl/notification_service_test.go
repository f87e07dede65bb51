package impl

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/domain/service"
	"hyperlocal/internal/infra/metrics"
	mockRepo "hyperlocal/internal/mocks/repository"
	mockSvc "hyperlocal/internal/mocks/service"
	"hyperlocal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	recipientRepo    *mockRepo.MockRecipientRepository
	notificationRepo *mockRepo.MockNotificationRepository
	email            *mockSvc.MockDeliveryChannel
	push             *mockSvc.MockDeliveryChannel
	dispatcher       *mockSvc.MockTaskDispatcher
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T) (*notificationService, *routerMocks) {
	m := &routerMocks{
		recipientRepo:    mockRepo.NewMockRecipientRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		email:            mockSvc.NewMockDeliveryChannel(t),
		push:             mockSvc.NewMockDeliveryChannel(t),
		dispatcher:       mockSvc.NewMockTaskDispatcher(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}
	m.email.EXPECT().Name().Return(entity.ChannelEmail)
	m.push.EXPECT().Name().Return(entity.ChannelPush)

	svc := NewNotificationService(NotificationServiceParams{
		Config:           &config.Config{Notification: &config.NotificationConfig{MaxConcurrency: 4}},
		Logger:           testLogger(),
		Metrics:          metrics.New(prometheus.NewRegistry()),
		RecipientRepo:    m.recipientRepo,
		NotificationRepo: m.notificationRepo,
		Channels:         []service.DeliveryChannel{m.email, m.push},
		Dispatcher:       m.dispatcher,
		Publisher:        m.publisher,
	}).(*notificationService)

	return svc, m
}

func (m *routerMocks) allowEvents() {
	m.publisher.EXPECT().PublishDeliveryEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func testPayload() entity.NotificationPayload {
	return entity.NotificationPayload{
		Title:    "Water supply interrupted",
		Body:     "No supply in Patimeeda until 6 pm",
		Link:     "/alerts/42",
		Category: entity.CategoryAlert,
	}
}

func recordWith(method entity.DeliveryMethod) interface{} {
	return mock.MatchedBy(func(r *entity.NotificationRecord) bool {
		return r.DeliveryMethod == method && r.Delivered
	})
}

func TestNotificationService_Route_EmailOnlyDelivered(t *testing.T) {
	svc, m := createTestNotificationService(t)
	m.allowEvents()
	recipient := &entity.Recipient{ID: uuid.New(), EmailAddress: "anu@example.com"}

	m.email.EXPECT().Send(mock.Anything, recipient, testPayload()).Return(entity.Sent(entity.ChannelEmail))
	m.notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.MatchedBy(func(r *entity.NotificationRecord) bool {
			return r.RecipientID == recipient.ID &&
				r.DeliveryMethod == entity.DeliveryMethodEmail &&
				r.Delivered &&
				r.Title == testPayload().Title
		})).
		Return(nil).
		Once()

	report, err := svc.Route(context.Background(), []*entity.Recipient{recipient}, testPayload())

	require.NoError(t, err)
	assert.Equal(t, &entity.DeliveryReport{RecipientCount: 1, EmailCount: 1, PushCount: 0}, report)
	m.push.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_Route_EmailFailsPushSucceeds(t *testing.T) {
	svc, m := createTestNotificationService(t)
	m.allowEvents()
	recipient := &entity.Recipient{ID: uuid.New(), EmailAddress: "anu@example.com", PushToken: "fcm-token"}

	m.email.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Failed(entity.ChannelEmail, "dial timeout"))
	m.push.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelPush))
	m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodPush)).Return(nil).Once()

	report, err := svc.Route(context.Background(), []*entity.Recipient{recipient}, testPayload())

	require.NoError(t, err)
	assert.Equal(t, 1, report.EmailCount, "counted by contact presence, not delivery")
	assert.Equal(t, 0, report.PushCount)
}

func TestNotificationService_Route_BothChannelsDelivered(t *testing.T) {
	svc, m := createTestNotificationService(t)
	m.allowEvents()
	recipient := &entity.Recipient{ID: uuid.New(), EmailAddress: "anu@example.com", PushToken: "fcm-token"}

	m.email.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelEmail))
	m.push.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelPush))
	m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodBoth)).Return(nil).Once()

	_, err := svc.Route(context.Background(), []*entity.Recipient{recipient}, testPayload())

	require.NoError(t, err)
}

func TestNotificationService_Route_NothingPersistedWithoutDelivery(t *testing.T) {
	tests := []struct {
		name      string
		recipient *entity.Recipient
		setup     func(m *routerMocks)
		report    entity.DeliveryReport
	}{
		{
			name:      "no contact info",
			recipient: &entity.Recipient{ID: uuid.New()},
			setup:     func(*routerMocks) {},
			report:    entity.DeliveryReport{RecipientCount: 1},
		},
		{
			name:      "both channels fail",
			recipient: &entity.Recipient{ID: uuid.New(), EmailAddress: "a@example.com", PushToken: "tok"},
			setup: func(m *routerMocks) {
				m.email.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(entity.Failed(entity.ChannelEmail, "550 mailbox unavailable"))
				m.push.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(entity.DeliveryOutcome{
					Channel: entity.ChannelPush, Status: entity.DeliveryStatusFailed, Reason: "unregistered", InvalidToken: true,
				})
			},
			report: entity.DeliveryReport{RecipientCount: 1, EmailCount: 1},
		},
		{
			name:      "push only and push fails",
			recipient: &entity.Recipient{ID: uuid.New(), PushToken: "tok"},
			setup: func(m *routerMocks) {
				m.push.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(entity.Failed(entity.ChannelPush, "deadline exceeded"))
			},
			report: entity.DeliveryReport{RecipientCount: 1, PushCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestNotificationService(t)
			m.allowEvents()
			tt.setup(m)

			report, err := svc.Route(context.Background(), []*entity.Recipient{tt.recipient}, testPayload())

			require.NoError(t, err)
			assert.Equal(t, tt.report, *report)
			m.notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
		})
	}
}

func TestNotificationService_Route_PersistFailureCountsAsUndelivered(t *testing.T) {
	svc, m := createTestNotificationService(t)
	recipient := &entity.Recipient{ID: uuid.New(), PushToken: "tok"}

	m.push.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(entity.Sent(entity.ChannelPush))
	m.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(errors.New("db down"))
	m.publisher.EXPECT().
		PublishDeliveryEvent(mock.Anything, mock.MatchedBy(func(e *entity.DeliveryEvent) bool {
			return e.DeliveredCount == 0 && e.PersistFailed == 1 && e.PushCount == 1
		})).
		Return(nil).
		Once()

	report, err := svc.Route(context.Background(), []*entity.Recipient{recipient}, testPayload())

	require.NoError(t, err, "per-recipient failures never fail the call")
	assert.Equal(t, 1, report.RecipientCount)
}

func TestNotificationService_Route_FansOutAndJoins(t *testing.T) {
	svc, m := createTestNotificationService(t)
	m.allowEvents()

	const n = 20
	recipients := make([]*entity.Recipient, 0, n)
	for i := 0; i < n; i++ {
		recipients = append(recipients, &entity.Recipient{ID: uuid.New(), EmailAddress: fmt.Sprintf("user%d@example.com", i)})
	}

	var inFlight, peak atomic.Int32
	m.email.EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.Recipient, entity.NotificationPayload) entity.DeliveryOutcome {
			cur := inFlight.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)

			return entity.Sent(entity.ChannelEmail)
		}).
		Times(n)

	var persisted atomic.Int32
	m.notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.NotificationRecord) error {
			persisted.Add(1)

			return nil
		}).
		Times(n)

	report, err := svc.Route(context.Background(), recipients, testPayload())

	require.NoError(t, err)
	assert.Equal(t, int32(n), persisted.Load(), "every attempt resolved before Route returned")
	assert.Equal(t, n, report.EmailCount)
	assert.Greater(t, peak.Load(), int32(1), "recipients are delivered concurrently")
	assert.LessOrEqual(t, peak.Load(), int32(4), "fan-out is bounded by maxConcurrency")
}

func TestNotificationService_Route_DetachedFromCallerCancellation(t *testing.T) {
	svc, m := createTestNotificationService(t)
	m.allowEvents()
	ctx, cancel := context.WithCancel(context.Background())
	recipient := &entity.Recipient{ID: uuid.New(), PushToken: "tok"}

	m.push.EXPECT().
		Send(mock.Anything, recipient, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, _ *entity.Recipient, _ entity.NotificationPayload) entity.DeliveryOutcome {
			cancel()
			if sendCtx.Err() != nil {
				return entity.Failed(entity.ChannelPush, sendCtx.Err().Error())
			}

			return entity.Sent(entity.ChannelPush)
		})
	m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodPush)).Return(nil).Once()

	_, err := svc.Route(ctx, []*entity.Recipient{recipient}, testPayload())

	require.NoError(t, err)
}

func TestNotificationService_Route_CancelledBeforeStart(t *testing.T) {
	svc, _ := createTestNotificationService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.Route(ctx, []*entity.Recipient{{ID: uuid.New(), EmailAddress: "a@example.com"}}, testPayload())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNotificationService_CreateNotification(t *testing.T) {
	recipientID := uuid.New()
	input := &usecase.CreateNotificationInput{
		RecipientID: recipientID,
		Title:       "Your request got a reply",
		Body:        "A neighbour offered help",
		Category:    entity.CategoryService,
		EmailHTML:   "<p>custom</p>",
	}

	t.Run("uses pre-rendered email body", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		recipient := &entity.Recipient{ID: recipientID, EmailAddress: "a@example.com"}

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(recipient, nil)
		m.email.EXPECT().
			Send(mock.Anything, recipient, mock.MatchedBy(func(p entity.NotificationPayload) bool {
				return p.RenderedEmailBody == "<p>custom</p>" && p.Category == entity.CategoryService
			})).
			Return(entity.Sent(entity.ChannelEmail))
		m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodEmail)).Return(nil)

		record, err := svc.CreateNotification(context.Background(), input)

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, recipientID, record.RecipientID)
	})

	t.Run("skip email delivers push only", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		recipient := &entity.Recipient{ID: recipientID, EmailAddress: "a@example.com", PushToken: "tok"}
		skip := *input
		skip.SkipEmail = true

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(recipient, nil)
		m.push.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelPush))
		m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodPush)).Return(nil)

		record, err := svc.CreateNotification(context.Background(), &skip)

		require.NoError(t, err)
		require.NotNil(t, record)
		m.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pre-resolved recipient skips the directory", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		recipient := &entity.Recipient{ID: recipientID, PushToken: "tok"}
		resolved := *input
		resolved.Recipient = recipient

		m.push.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelPush))
		m.notificationRepo.EXPECT().CreateNotification(mock.Anything, recordWith(entity.DeliveryMethodPush)).Return(nil)

		record, err := svc.CreateNotification(context.Background(), &resolved)

		require.NoError(t, err)
		require.NotNil(t, record)
		m.recipientRepo.AssertNotCalled(t, "FindRecipientByID", mock.Anything, mock.Anything)
	})

	t.Run("nothing delivered returns nil record", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(&entity.Recipient{ID: recipientID}, nil)

		record, err := svc.CreateNotification(context.Background(), input)

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("persist failure returns nil record", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(&entity.Recipient{ID: recipientID, PushToken: "tok"}, nil)
		m.push.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).Return(entity.Sent(entity.ChannelPush))
		m.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(errors.New("db down"))

		record, err := svc.CreateNotification(context.Background(), input)

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(nil, repository.ErrRecipientNotFound)

		record, err := svc.CreateNotification(context.Background(), input)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, domainerrors.ErrRecipientNotFound)
	})

	t.Run("directory unavailable", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		m.recipientRepo.EXPECT().FindRecipientByID(mock.Anything, recipientID).Return(nil, errors.New("timeout"))

		record, err := svc.CreateNotification(context.Background(), input)

		assert.Nil(t, record)
		assert.True(t, domainerrors.IsDependencyError(err))
	})
}

// runInline makes the mocked dispatcher execute tasks synchronously.
func runInline(name string, task func(context.Context)) error {
	task(context.Background())

	return nil
}

func TestNotificationService_DispatchAsync(t *testing.T) {
	t.Run("queued route runs", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		m.allowEvents()
		recipient := &entity.Recipient{ID: uuid.New(), PushToken: "tok"}

		m.dispatcher.EXPECT().Submit(taskRoute, mock.Anything).RunAndReturn(runInline)
		m.push.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelPush))
		m.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, svc.DispatchAsync([]*entity.Recipient{recipient}, testPayload()))
	})

	t.Run("queue full", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		m.dispatcher.EXPECT().Submit(taskRoute, mock.Anything).Return(service.ErrDispatchQueueFull)

		err := svc.DispatchAsync([]*entity.Recipient{{ID: uuid.New()}}, testPayload())

		assert.ErrorIs(t, err, service.ErrDispatchQueueFull)
	})
}

func TestNotificationService_DispatchEmail(t *testing.T) {
	t.Run("sends without recording", func(t *testing.T) {
		svc, m := createTestNotificationService(t)
		recipient := &entity.Recipient{ID: uuid.New(), EmailAddress: "a@example.com"}

		m.dispatcher.EXPECT().Submit(taskEmail, mock.Anything).RunAndReturn(runInline)
		m.email.EXPECT().Send(mock.Anything, recipient, mock.Anything).Return(entity.Sent(entity.ChannelEmail))

		require.NoError(t, svc.DispatchEmail(recipient, testPayload()))
		m.notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	})

	t.Run("no address is a no-op", func(t *testing.T) {
		svc, m := createTestNotificationService(t)

		require.NoError(t, svc.DispatchEmail(&entity.Recipient{ID: uuid.New()}, testPayload()))
		m.dispatcher.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_ListAndMarkAsRead(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()
	records := []*entity.NotificationRecord{{ID: notificationID, RecipientID: recipientID}}

	m.notificationRepo.EXPECT().FindNotificationsByRecipient(ctx, recipientID, 20, 0).Return(records, nil)
	m.notificationRepo.EXPECT().MarkAsRead(ctx, recipientID, notificationID).Return(repository.ErrNotificationNotFound)

	got, err := svc.ListNotifications(ctx, recipientID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	err = svc.MarkAsRead(ctx, recipientID, notificationID)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}
