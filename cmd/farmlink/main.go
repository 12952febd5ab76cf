package main

import (
	"context"
	"log/slog"
	"os"

	"farmlink/config"
	"farmlink/internal/delivery"
	"farmlink/internal/delivery/api"
	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/router/handler"
	"farmlink/internal/delivery/consumer"
	"farmlink/internal/domain/service"
	"farmlink/internal/infra/auth"
	"farmlink/internal/infra/cache"
	logs "farmlink/internal/infra/log"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/infra/notification"
	"farmlink/internal/infra/persistence/postgres"
	"farmlink/internal/infra/pubsub"
	"farmlink/internal/infra/qrcode"
	"farmlink/internal/infra/taskqueue"
	"farmlink/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewRedisClient,
			metrics.New,
			fx.Annotate(
				taskqueue.New,
				fx.As(new(service.TaskQueue)),
			),
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeliveryRepository,
			postgres.NewChannelRepository,
			postgres.NewWatchlistRepository,
			cache.NewSnapshotStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRefreshCoordinator,
			impl.NewNotifier,
			impl.NewDeliveryService,
			impl.NewChannelService,
			impl.NewWatchlistService,
			impl.NewDashboardService,
			// used by the in-process consumer when the memory bus is selected
			impl.NewDispatchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewWatchlistHandler,
			handler.NewDashboardHandler,
			handler.NewDeliveryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				consumer.NewMemoryConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
