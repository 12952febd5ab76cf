package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies by route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the error handler has written the response
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := routeOf(c)
		method := c.Request().Method

		m.metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return nil
	}
}

// routeOf returns the route template so label cardinality stays bounded
func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}

// statusOf predicts the status the error handler will write for err
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
