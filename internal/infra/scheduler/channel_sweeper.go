// Package scheduler runs periodic maintenance jobs of the dispatch worker.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"farmlink/config"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

const revokedReasonStale = "stale"

// ChannelSweeper prunes notification channels that were not registered again within
// the configured window.
type ChannelSweeper struct {
	channels   usecase.ChannelUsecase
	metrics    *metrics.Metrics
	logger     *slog.Logger
	staleAfter time.Duration
	interval   time.Duration
	now        func() time.Time

	scheduler gocron.Scheduler
}

// Params defines the dependencies of the fx constructor
type Params struct {
	fx.In
	fx.Lifecycle

	Channels usecase.ChannelUsecase
	Config   *config.Config
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewChannelSweeper creates the sweeper and starts it with the application. The sweep is
// not scheduled when staleAfter is zero.
func NewChannelSweeper(params Params) (*ChannelSweeper, error) {
	cfg := params.Config.Dispatch
	sweeper := &ChannelSweeper{
		channels:   params.Channels,
		metrics:    params.Metrics,
		logger:     params.Logger,
		staleAfter: cfg.StaleAfter,
		interval:   cfg.SweepInterval,
		now:        time.Now,
	}

	if sweeper.staleAfter <= 0 {
		params.Logger.Info("Stale channel sweep disabled")

		return sweeper, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(sweeper.interval),
		gocron.NewTask(func(ctx context.Context) {
			_, _ = sweeper.Sweep(ctx)
		}),
		gocron.WithName("channel-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to schedule channel sweep")
	}
	sweeper.scheduler = scheduler

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("Starting stale channel sweep",
				slog.Duration("interval", sweeper.interval),
				slog.Duration("staleAfter", sweeper.staleAfter),
			)
			scheduler.Start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(scheduler.Shutdown(), "failed to stop scheduler")
		},
	})

	return sweeper, nil
}

// Sweep removes channels whose last registration is older than the stale window.
func (s *ChannelSweeper) Sweep(ctx context.Context) (int64, error) {
	if s.staleAfter <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-s.staleAfter)
	pruned, err := s.channels.PruneStale(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to prune stale channels", slog.Time("cutoff", cutoff), slog.Any("error", err))

		return 0, err
	}

	s.metrics.ObserveRevoked(revokedReasonStale, pruned)
	s.logger.Info("Stale channels pruned", slog.Int64("count", pruned), slog.Time("cutoff", cutoff))

	return pruned, nil
}
