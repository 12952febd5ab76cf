package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/dispatch-sub"

	// localMaxAttempts stands in for Pub/Sub redelivery when the worker answers 5xx
	localMaxAttempts = 3
)

//nolint:gochecknoglobals // shortened by tests
var localRetryBackoff = 200 * time.Millisecond

// localHTTPPublisher posts events straight to the worker in push-subscription format.
// Development only: there is no durable buffer between the two processes.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishDispatchEvent(ctx context.Context, event *entity.DispatchEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(NewPushEnvelope(event, data, localSubscription))
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := localRetryBackoff
	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, event.RequestID, body)
		switch {
		case err == nil && status < http.StatusMultipleChoices:
			p.logger.Debug("[LocalPubSub] Event delivered",
				slog.String("notification_id", event.NotificationID.String()),
				slog.Int("attempt", attempt),
			)

			return nil
		case err == nil && status < http.StatusInternalServerError:
			// the worker acked a message it will never accept
			return errors.Errorf("worker rejected event with status %d", status)
		case attempt >= localMaxAttempts:
			if err != nil {
				return err
			}

			return errors.Errorf("worker returned status %d after %d attempts", status, attempt)
		}

		p.logger.Warn("[LocalPubSub] Redelivering event",
			slog.String("notification_id", event.NotificationID.String()),
			slog.Int("attempt", attempt),
			slog.Int("status", status),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, requestID string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
