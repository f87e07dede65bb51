package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"hyperlocal/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	pushTimeout      = 10 * time.Second
	pushSubscription = "projects/local/subscriptions/delivery-events"
	errorBodyLimit   = 512
)

// pushEnvelope mirrors the body Pub/Sub push subscriptions deliver, so a local
// consumer can handle both the emulated and the real feed.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	// []byte marshals as base64, matching the push wire format.
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

// PushPublisher POSTs events to an HTTP endpoint in push-subscription format.
// Used in development instead of a real topic.
type PushPublisher struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
	logger   *slog.Logger
}

// NewPushPublisher creates a publisher targeting endpoint.
func NewPushPublisher(endpoint string, logger *slog.Logger) *PushPublisher {
	return &PushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		now:      time.Now,
		logger:   logger,
	}
}

func (p *PushPublisher) PublishDeliveryEvent(ctx context.Context, event *entity.DeliveryEvent) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: pushSubscription,
		Message: pushMessage{
			Data:        msg.data,
			Attributes:  msg.attrs,
			MessageID:   msg.id,
			PublishTime: p.now().UTC(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "marshal push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return errors.Errorf("push endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	p.logger.Debug("[PubSub] Delivery event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", msg.id),
	)

	return nil
}

func (p *PushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
