package pubsub

import (
	"context"
	"log/slog"
	"time"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	gcpubsub "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const (
	memoryAckDeadline = time.Minute
	memoryRetryDelay  = 2 * time.Second
)

// MemoryBus is an in-process topic with a single subscription, used when
// the API and the dispatcher run in one binary.
type MemoryBus struct {
	topic        *gcpubsub.Topic
	subscription *gcpubsub.Subscription
}

// NewMemoryBus creates the topic and its subscription. The subscription must
// exist before the first send or messages are dropped.
func NewMemoryBus() *MemoryBus {
	topic := mempubsub.NewTopic()

	return &MemoryBus{
		topic:        topic,
		subscription: mempubsub.NewSubscription(topic, memoryAckDeadline),
	}
}

// Handler processes one event. Returning retry=true redelivers the message.
type Handler func(ctx context.Context, event *entity.DispatchEvent) (retry bool)

// Receive blocks, passing each message to handle until ctx is done or the bus is shut down
func (b *MemoryBus) Receive(ctx context.Context, logger *slog.Logger, handle Handler) error {
	for {
		msg, err := b.subscription.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "memory subscription closed")
		}

		event, err := DecodeEvent(msg.Body)
		if err != nil {
			logger.Error("[MemoryPubSub] Dropping malformed message", slog.Any("error", err))
			msg.Ack()

			continue
		}

		if !handle(ctx, event) {
			msg.Ack()

			continue
		}

		select {
		case <-ctx.Done():
		case <-time.After(memoryRetryDelay):
		}
		if msg.Nackable() {
			msg.Nack()
		}
	}
}

// Shutdown flushes the topic and stops the subscription
func (b *MemoryBus) Shutdown(ctx context.Context) error {
	return errors.Join(
		b.topic.Shutdown(ctx),
		b.subscription.Shutdown(ctx),
	)
}

// memoryPublisher sends events to a MemoryBus
type memoryPublisher struct {
	bus    *MemoryBus
	logger *slog.Logger
}

// NewMemoryPublisher creates a publisher for bus
func NewMemoryPublisher(bus *MemoryBus, logger *slog.Logger) service.EventPublisher {
	return &memoryPublisher{bus: bus, logger: logger}
}

func (p *memoryPublisher) PublishDispatchEvent(ctx context.Context, event *entity.DispatchEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	err = p.bus.topic.Send(ctx, &gcpubsub.Message{
		LoggableID: event.NotificationID.String(),
		Body:       data,
		Metadata:   eventAttributes(event),
	})
	if err != nil {
		return errors.Wrap(err, "failed to send to memory topic")
	}

	return nil
}

// Close is a no-op; the bus is shut down by its owner
func (p *memoryPublisher) Close() error {
	return nil
}
