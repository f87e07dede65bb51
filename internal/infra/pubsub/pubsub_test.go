package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEncode(t *testing.T) {
	event := &entity.DeliveryEvent{
		EventID:        uuid.New(),
		Category:       entity.CategoryBloodDonation,
		DeliveredCount: 4,
		PersistFailed:  1,
	}

	msg, err := encode(event)
	require.NoError(t, err)

	assert.Equal(t, event.EventID.String(), msg.id)
	assert.Equal(t, map[string]string{
		"event_id":       event.EventID.String(),
		"category":       entity.CategoryBloodDonation,
		"delivered":      "4",
		"persist_failed": "1",
	}, msg.attrs)

	_, err = encode(nil)
	assert.Error(t, err)
}

func TestPushPublisher_PublishDeliveryEvent(t *testing.T) {
	event := &entity.DeliveryEvent{
		RequestID:      "req-1",
		EventID:        uuid.New(),
		Category:       entity.CategoryAlert,
		Title:          "Flood warning",
		RecipientCount: 3,
		EmailCount:     2,
		PushCount:      1,
		DeliveredCount: 3,
	}

	var received pushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publishedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	publisher := NewPushPublisher(srv.URL, discardLogger())
	publisher.now = func() time.Time { return publishedAt }

	require.NoError(t, publisher.PublishDeliveryEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, pushSubscription, received.Subscription)
	assert.Equal(t, event.EventID.String(), received.Message.MessageID)
	assert.True(t, publishedAt.Equal(received.Message.PublishTime))
	assert.Equal(t, "3", received.Message.Attributes["delivered"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	var decoded entity.DeliveryEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestPushPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	publisher := NewPushPublisher(srv.URL, discardLogger())

	err := publisher.PublishDeliveryEvent(context.Background(), &entity.DeliveryEvent{EventID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestNewEventPublisher(t *testing.T) {
	build := func(t *testing.T, cfg *config.PubSubConfig) error {
		t.Helper()

		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		})
		if err == nil {
			assert.NoError(t, publisher.PublishDeliveryEvent(context.Background(), &entity.DeliveryEvent{EventID: uuid.New()}))
		}

		return err
	}

	t.Run("unconfigured logs only", func(t *testing.T) {
		assert.NoError(t, build(t, nil))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		assert.Error(t, build(t, &config.PubSubConfig{Provider: "local"}))
	})

	t.Run("google requires topic", func(t *testing.T) {
		assert.Error(t, build(t, &config.PubSubConfig{Provider: "google", ProjectID: "p"}))
	})

	t.Run("unknown provider", func(t *testing.T) {
		assert.Error(t, build(t, &config.PubSubConfig{Provider: "kafka"}))
	})
}
