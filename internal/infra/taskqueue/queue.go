// Package taskqueue runs side effects on a bounded pool of background workers.
package taskqueue

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"

	"go.uber.org/fx"
)

const unkeyedKind = "task"

// Options configures a Queue
type Options struct {
	Workers     int
	Size        int
	TaskTimeout time.Duration
}

type job struct {
	key       string
	kind      string
	task      service.Task
	requestID string
	logger    *slog.Logger
}

// Queue is a fixed-size buffer drained by a fixed number of workers. Tasks waiting
// under the same key are coalesced; a task that is already running does not block a
// new submission of its key.
type Queue struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	jobs    chan job
	pending map[string]struct{}
	started bool
	closed  bool

	wg sync.WaitGroup
}

var _ service.TaskQueue = (*Queue)(nil)

// Params defines the dependencies of the fx constructor
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New creates the queue from configuration and binds it to the fx lifecycle
func New(params Params) *Queue {
	cfg := params.Config.Dashboard
	q := NewQueue(Options{
		Workers:     cfg.Workers,
		Size:        cfg.QueueSize,
		TaskTimeout: cfg.TaskTimeout,
	}, params.Logger, params.Metrics)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			q.Start()

			return nil
		},
		OnStop: q.Stop,
	})

	return q
}

// NewQueue creates a stopped queue
func NewQueue(opts Options, logger *slog.Logger, m *metrics.Metrics) *Queue {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Size <= 0 {
		opts.Size = 1
	}

	return &Queue{
		opts:    opts,
		logger:  logger,
		metrics: m,
		jobs:    make(chan job, opts.Size),
		pending: make(map[string]struct{}),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.closed {
		return
	}
	q.started = true

	for i := 0; i < q.opts.Workers; i++ {
		q.wg.Add(1)
		go q.work()
	}

	q.logger.Info("Task queue started",
		slog.Int("workers", q.opts.Workers),
		slog.Int("size", q.opts.Size),
	)
}

// Submit implements service.TaskQueue
func (q *Queue) Submit(ctx context.Context, key string, task service.Task) bool {
	kind := kindOf(key)
	j := job{
		key:       key,
		kind:      kind,
		task:      task,
		requestID: deliverycontext.GetRequestIDFromContext(ctx),
		logger:    deliverycontext.GetLoggerOrDefault(ctx, q.logger),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.drop(j, "queue stopped")

		return false
	}

	if key != "" {
		if _, ok := q.pending[key]; ok {
			q.metrics.TasksCoalesced.WithLabelValues(kind).Inc()

			return true
		}
	}

	select {
	case q.jobs <- j:
		if key != "" {
			q.pending[key] = struct{}{}
		}
		q.metrics.TasksSubmitted.WithLabelValues(kind).Inc()
		q.metrics.QueueDepth.Set(float64(len(q.jobs)))

		return true
	default:
		q.drop(j, "queue full")

		return false
	}
}

// Stop rejects new tasks and waits for queued tasks to finish until ctx expires
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()

		return nil
	}
	q.closed = true
	close(q.jobs)
	started := q.started
	q.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info("Task queue drained")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "task queue did not drain before shutdown deadline")
	}
}

func (q *Queue) work() {
	defer q.wg.Done()

	for j := range q.jobs {
		q.mu.Lock()
		if j.key != "" {
			delete(q.pending, j.key)
		}
		q.metrics.QueueDepth.Set(float64(len(q.jobs)))
		q.mu.Unlock()

		q.run(j)
	}
}

func (q *Queue) run(j job) {
	// Side effects must not be cancelled with the request that issued them.
	ctx, cancel := context.WithTimeout(context.Background(), q.opts.TaskTimeout)
	defer cancel()

	// j.logger is already scoped to the submitting request
	logger := j.logger
	if j.requestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, j.requestID)
	}
	ctx = deliverycontext.WithLogger(ctx, logger)

	start := time.Now()
	err := safeRun(ctx, j.task)
	q.metrics.TaskDuration.WithLabelValues(j.kind).Observe(time.Since(start).Seconds())

	if err != nil {
		q.metrics.TasksFailed.WithLabelValues(j.kind).Inc()
		logger.Error("Background task failed",
			slog.String("key", j.key),
			slog.Any("error", err),
		)
	}
}

// drop must be called with q.mu held
func (q *Queue) drop(j job, reason string) {
	q.metrics.TasksDropped.WithLabelValues(j.kind).Inc()
	j.logger.Warn("Background task dropped",
		slog.String("key", j.key),
		slog.String("reason", reason),
	)
}

func safeRun(ctx context.Context, task service.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("task panicked: %v", r)
		}
	}()

	return task(ctx)
}

func kindOf(key string) string {
	if key == "" {
		return unkeyedKind
	}
	kind, _, _ := strings.Cut(key, ":")

	return kind
}
