// Package pubsub provides the event bus between the API and the dispatch worker.
package pubsub

import (
	"context"
	"log/slog"

	"farmlink/config"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDispatchEvent(_ context.Context, event *entity.DispatchEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("notification_id", event.NotificationID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Bus    *MemoryBus `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderMemory:
		if params.Bus == nil {
			return nil, errors.New("memory provider requires an in-process bus")
		}
		logger.Info("Using in-process memory bus for Pub/Sub")

		publisher = NewMemoryPublisher(params.Bus, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewMemoryBusForConfig returns a MemoryBus when the memory provider is selected, nil otherwise.
// The bus is shut down with the application.
func NewMemoryBusForConfig(lc fx.Lifecycle, cfg *config.Config) *MemoryBus {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderMemory {
		return nil
	}

	bus := NewMemoryBus()
	lc.Append(fx.Hook{
		OnStop: bus.Shutdown,
	})

	return bus
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewMemoryBusForConfig,
		NewEventPublisher,
	),
)
