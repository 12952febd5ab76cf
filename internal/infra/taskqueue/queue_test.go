package taskqueue

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestQueue(t *testing.T, workers, size int) (*Queue, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	q := NewQueue(Options{Workers: workers, Size: size, TaskTimeout: time.Second}, newDiscardLogger(), m)

	return q, m
}

func stopQueue(t *testing.T, q *Queue) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, q.Stop(ctx))
}

func TestQueue_RunsSubmittedTasks(t *testing.T) {
	q, m := newTestQueue(t, 2, 8)
	q.Start()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		ok := q.Submit(context.Background(), "", func(context.Context) error {
			ran.Add(1)

			return nil
		})
		require.True(t, ok)
	}

	stopQueue(t, q)

	assert.Equal(t, int32(5), ran.Load())
	assert.InDelta(t, 5, testutil.ToFloat64(m.TasksSubmitted.WithLabelValues(unkeyedKind)), 0)
}

func TestQueue_CoalescesPendingKey(t *testing.T) {
	q, m := newTestQueue(t, 1, 8)
	q.Start()

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, q.Submit(context.Background(), "blocker:1", func(context.Context) error {
		close(started)
		<-release

		return nil
	}))
	<-started

	var runs atomic.Int32
	task := func(context.Context) error {
		runs.Add(1)

		return nil
	}
	assert.True(t, q.Submit(context.Background(), "buyer_refresh:u-1", task))
	assert.True(t, q.Submit(context.Background(), "buyer_refresh:u-1", task))
	assert.True(t, q.Submit(context.Background(), "buyer_refresh:u-1", task))

	close(release)
	stopQueue(t, q)

	assert.Equal(t, int32(1), runs.Load())
	assert.InDelta(t, 2, testutil.ToFloat64(m.TasksCoalesced.WithLabelValues("buyer_refresh")), 0)
}

func TestQueue_DropsWhenFull(t *testing.T) {
	q, m := newTestQueue(t, 1, 1)

	// not started, so the single slot stays occupied
	assert.True(t, q.Submit(context.Background(), "notify:a", func(context.Context) error { return nil }))
	assert.False(t, q.Submit(context.Background(), "notify:b", func(context.Context) error { return nil }))

	assert.InDelta(t, 1, testutil.ToFloat64(m.TasksDropped.WithLabelValues("notify")), 0)

	q.Start()
	stopQueue(t, q)
}

func TestQueue_FailuresAreCountedNotPropagated(t *testing.T) {
	q, m := newTestQueue(t, 1, 4)
	q.Start()

	assert.True(t, q.Submit(context.Background(), "buyer_refresh:u-1", func(context.Context) error {
		return errors.New("redis down")
	}))
	assert.True(t, q.Submit(context.Background(), "buyer_refresh:u-2", func(context.Context) error {
		panic("boom")
	}))

	stopQueue(t, q)

	assert.InDelta(t, 2, testutil.ToFloat64(m.TasksFailed.WithLabelValues("buyer_refresh")), 0)
}

func TestQueue_TaskOutlivesSubmittingRequest(t *testing.T) {
	q, _ := newTestQueue(t, 1, 4)
	q.Start()

	reqCtx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	assert.True(t, q.Submit(reqCtx, "", func(ctx context.Context) error {
		errCh <- ctx.Err()

		return nil
	}))
	cancel()

	stopQueue(t, q)
	assert.NoError(t, <-errCh)
}

func TestQueue_RejectsAfterStop(t *testing.T) {
	q, m := newTestQueue(t, 1, 4)
	q.Start()
	stopQueue(t, q)

	assert.False(t, q.Submit(context.Background(), "notify:u-1", func(context.Context) error { return nil }))
	assert.InDelta(t, 1, testutil.ToFloat64(m.TasksDropped.WithLabelValues("notify")), 0)
	// stopping twice is harmless
	stopQueue(t, q)
}

func TestQueue_StopHonoursDeadline(t *testing.T) {
	q, _ := newTestQueue(t, 1, 4)
	q.Start()

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	q.Submit(context.Background(), "", func(context.Context) error {
		close(started)
		<-release

		return nil
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, q.Stop(ctx))
}
