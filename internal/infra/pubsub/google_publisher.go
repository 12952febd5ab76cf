package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes dispatch events ordered per recipient, so milestone
// notifications of one buyer reach the worker in the order they were issued.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishDispatchEvent blocks until the server acks the event
func (p *googlePubSubPublisher) PublishDispatchEvent(ctx context.Context, event *entity.DispatchEvent) error {
	data, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// a failed publish pauses its ordering key until resumed
		p.publisher.ResumePublish(event.UID)

		return errors.Wrap(err, "failed to publish dispatch event")
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("notification_id", event.NotificationID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
