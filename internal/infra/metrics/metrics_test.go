package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmlink/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveDispatch(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.ObserveDispatch(&entity.DispatchResult{Sent: 3, Failed: 1})
	m.ObserveDispatch(nil)
	m.ObserveRevoked("invalid", 2)
	m.ObserveRevoked("stale", 0)

	assert.InDelta(t, 3, testutil.ToFloat64(m.DispatchMessages.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DispatchMessages.WithLabelValues("failed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.ChannelsRevoked.WithLabelValues("invalid")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.ChannelsRevoked.WithLabelValues("stale")), 0)
}

func TestMetrics_HandlerServesRegistry(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")
	m.ObserveMilestone("Packed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_ledger_milestone_advances_total{status="Packed"} 1`))
}
