// Package cache stores precomputed dashboards in Redis.
package cache

import (
	"context"
	"log/slog"

	"farmlink/config"
	"farmlink/internal/domain/lifecycle"
	"farmlink/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client and binds it to the fx lifecycle
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				// Dashboards degrade to live reads, so a missing Redis is not fatal.
				params.Logger.Warn("Redis is unreachable at startup",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			if err := client.Close(); err != nil {
				return errors.Wrap(err, "failed to close Redis client")
			}

			return nil
		},
	})

	return client
}
