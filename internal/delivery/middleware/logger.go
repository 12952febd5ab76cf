package middleware

import (
	"log/slog"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes an access log line. With debug off only failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle must run after RequestIDMiddleware so the scoped logger is available
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// the central error handler has not written the response yet
			status = statusOf(err)
		}

		level := levelFor(status)
		if level == slog.LevelInfo && !m.debug {
			return err
		}

		req := c.Request()
		attrs := []slog.Attr{
			slog.String("method", req.Method),
			slog.String("route", routeOf(c)),
			slog.String("path", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("remote_ip", c.RealIP()),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
		logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)

		return err
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
