package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"farmlink/internal/domain/entity"
	"farmlink/internal/errors"
)

// Message attribute keys carried next to the event payload
const (
	AttrNotificationID = "notification_id"
	AttrUID            = "uid"
	AttrRequestID      = "request_id"
)

// PushEnvelope is the body Google Pub/Sub posts to push endpoints.
// The local publisher produces the same shape.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps an encoded event the way a push subscription delivers it
func NewPushEnvelope(event *entity.DispatchEvent, data []byte, subscription string) *PushEnvelope {
	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.NotificationID.String()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return envelope
}

// Event decodes the dispatch event carried by the envelope
func (e *PushEnvelope) Event() (*entity.DispatchEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	return DecodeEvent(data)
}

// RequestID returns the request id attribute, or empty
func (e *PushEnvelope) RequestID() string {
	return e.Message.Attributes[AttrRequestID]
}

// EncodeEvent serializes a dispatch event as a message payload
func EncodeEvent(event *entity.DispatchEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// DecodeEvent parses a message payload
func DecodeEvent(data []byte) (*entity.DispatchEvent, error) {
	var event entity.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse dispatch event")
	}

	return &event, nil
}

func eventAttributes(event *entity.DispatchEvent) map[string]string {
	attributes := map[string]string{
		AttrNotificationID: event.NotificationID.String(),
		AttrUID:            event.UID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
