package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmlink/config"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"
	mockUsecase "farmlink/internal/mocks/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestSweeper(t *testing.T, staleAfter time.Duration) (*ChannelSweeper, *mockUsecase.MockChannelUsecase, *metrics.Metrics) {
	channels := mockUsecase.NewMockChannelUsecase(t)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	lc := fxtest.NewLifecycle(t)

	sweeper, err := NewChannelSweeper(Params{
		Lifecycle: lc,
		Channels:  channels,
		Config: &config.Config{
			Dispatch: &config.DispatchConfig{StaleAfter: staleAfter, SweepInterval: 24 * time.Hour},
		},
		Metrics: m,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return sweeper, channels, m
}

func TestChannelSweeper_Sweep(t *testing.T) {
	sweeper, channels, m := newTestSweeper(t, 30*24*time.Hour)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sweeper.now = func() time.Time { return now }

	ctx := context.Background()
	channels.EXPECT().PruneStale(ctx, now.Add(-30*24*time.Hour)).Return(3, nil)

	pruned, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ChannelsRevoked.WithLabelValues("stale")), 0)
}

func TestChannelSweeper_SweepFailure(t *testing.T) {
	sweeper, channels, m := newTestSweeper(t, time.Hour)
	ctx := context.Background()

	channels.EXPECT().PruneStale(ctx, mock.AnythingOfType("time.Time")).Return(0, errors.New("connection refused"))

	_, err := sweeper.Sweep(ctx)
	require.Error(t, err)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ChannelsRevoked.WithLabelValues("stale")), 0)
}

func TestChannelSweeper_Disabled(t *testing.T) {
	sweeper, _, _ := newTestSweeper(t, 0)

	assert.Nil(t, sweeper.scheduler)

	pruned, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pruned)
}

func TestChannelSweeper_Lifecycle(t *testing.T) {
	channels := mockUsecase.NewMockChannelUsecase(t)
	lc := fxtest.NewLifecycle(t)

	_, err := NewChannelSweeper(Params{
		Lifecycle: lc,
		Channels:  channels,
		Config: &config.Config{
			Dispatch: &config.DispatchConfig{StaleAfter: time.Hour, SweepInterval: time.Hour},
		},
		Metrics: metrics.NewWithRegistry(prometheus.NewRegistry(), "test"),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	lc.RequireStop()
}
