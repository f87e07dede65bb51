package pubsub

import (
	"encoding/json"
	"strconv"

	"hyperlocal/internal/domain/entity"

	"github.com/pkg/errors"
)

// encodedEvent is a delivery event serialized once for any transport.
type encodedEvent struct {
	id    string
	data  []byte
	attrs map[string]string
}

// encode serializes event. Attributes let subscribers filter by category or
// skip empty deliveries without decoding the body.
func encode(event *entity.DeliveryEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("nil delivery event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal delivery event")
	}

	attrs := map[string]string{
		"event_id":  event.EventID.String(),
		"category":  event.Category,
		"delivered": strconv.Itoa(event.DeliveredCount),
	}
	if event.PersistFailed > 0 {
		attrs["persist_failed"] = strconv.Itoa(event.PersistFailed)
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return &encodedEvent{id: event.EventID.String(), data: data, attrs: attrs}, nil
}
