// Package metrics exposes the Prometheus collectors of both binaries.
package metrics

import (
	"database/sql"
	"net/http"

	"farmlink/config"
	"farmlink/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	registry *prometheus.Registry

	// Task queue metrics
	TasksSubmitted *prometheus.CounterVec
	TasksCoalesced *prometheus.CounterVec
	TasksDropped   *prometheus.CounterVec
	TasksFailed    *prometheus.CounterVec
	TaskDuration   *prometheus.HistogramVec
	QueueDepth     prometheus.Gauge

	// Ledger metrics
	DeliveriesCreated prometheus.Counter
	MilestoneAdvances *prometheus.CounterVec

	// Dispatch metrics
	DispatchMessages *prometheus.CounterVec
	ChannelsRevoked  *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the registry from configuration
func New(cfg *config.Config) *Metrics {
	namespace := "farmlink"
	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(registry, namespace)
}

// NewWithRegistry registers all collectors on registry. Tests pass a fresh registry each time.
func NewWithRegistry(registry *prometheus.Registry, namespace string) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		TasksSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "submitted_total",
			Help:      "Total number of tasks accepted by the background queue",
		}, []string{"kind"}),
		TasksCoalesced: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "coalesced_total",
			Help:      "Total number of tasks merged into an already pending task",
		}, []string{"kind"}),
		TasksDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "dropped_total",
			Help:      "Total number of tasks rejected because the queue was full or stopped",
		}, []string{"kind"}),
		TasksFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "failed_total",
			Help:      "Total number of tasks that returned an error or panicked",
		}, []string{"kind"}),
		TaskDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "task_duration_seconds",
			Help:      "Time spent running background tasks",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "taskqueue",
			Name:      "depth",
			Help:      "Current number of tasks waiting in the queue",
		}),

		DeliveriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "deliveries_created_total",
			Help:      "Total number of successful create requests for accepted bids",
		}),
		MilestoneAdvances: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "milestone_advances_total",
			Help:      "Total number of milestone advances by resulting status",
		}, []string{"status"}),

		DispatchMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "messages_total",
			Help:      "Total number of push messages by result",
		}, []string{"result"}),
		ChannelsRevoked: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "channels_revoked_total",
			Help:      "Total number of notification channels removed by the dispatcher",
		}, []string{"reason"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry for tests
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// RegisterDBStats exports connection pool statistics of db under the given db_name label
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// ObserveMilestone counts a successful milestone advance
func (m *Metrics) ObserveMilestone(status string) {
	m.MilestoneAdvances.WithLabelValues(status).Inc()
}

// ObserveDispatch counts the outcome of one fan-out
func (m *Metrics) ObserveDispatch(result *entity.DispatchResult) {
	if result == nil {
		return
	}
	m.DispatchMessages.WithLabelValues("sent").Add(float64(result.Sent))
	m.DispatchMessages.WithLabelValues("failed").Add(float64(result.Failed))
}

// ObserveRevoked counts removed channels by reason
func (m *Metrics) ObserveRevoked(reason string, count int64) {
	if count <= 0 {
		return
	}
	m.ChannelsRevoked.WithLabelValues(reason).Add(float64(count))
}
