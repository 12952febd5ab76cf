// Package consumer drains the in-process event bus when the API binary also dispatches.
package consumer

import (
	"context"
	"log/slog"

	"farmlink/internal/delivery"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/infra/pubsub"
	"farmlink/internal/usecase"

	"go.uber.org/fx"
)

const revokedReasonDelivery = "delivery"

type memoryConsumer struct {
	bus        *pubsub.MemoryBus
	dispatchUC usecase.DispatchUsecase
	metrics    *metrics.Metrics
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// MemoryConsumerParams holds dependencies for the memory consumer
type MemoryConsumerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Bus        *pubsub.MemoryBus `optional:"true"`
	DispatchUC usecase.DispatchUsecase
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// NewMemoryConsumer creates the consumer. Without a memory bus Serve returns at once.
func NewMemoryConsumer(params MemoryConsumerParams) delivery.Delivery {
	ctx, cancel := context.WithCancel(context.Background())
	c := &memoryConsumer{
		bus:        params.Bus,
		dispatchUC: params.DispatchUC,
		metrics:    params.Metrics,
		logger:     params.Logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	// registered after the bus, so it stops receiving before the bus shuts down
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return c
}

func (c *memoryConsumer) Serve(ctx context.Context) error {
	if c.bus == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.ctx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	c.logger.Info("Starting in-process dispatch consumer")

	return c.bus.Receive(ctx, c.logger, c.handle)
}

func (c *memoryConsumer) handle(ctx context.Context, event *entity.DispatchEvent) bool {
	ctx, reqLogger := deliverycontext.Scope(ctx, c.logger, event.RequestID)

	result, err := c.dispatchUC.Deliver(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("Failed to dispatch notification",
			slog.String("notificationID", event.NotificationID.String()),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)

		return retryable
	}

	c.metrics.ObserveDispatch(result)
	c.metrics.ObserveRevoked(revokedReasonDelivery, int64(result.Revoked))

	return false
}
