// Package worker is the push endpoint that turns Pub/Sub messages into FCM deliveries.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"farmlink/config"
	"farmlink/internal/delivery"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/delivery/middleware"
	"farmlink/internal/delivery/worker/handler"
	"farmlink/internal/domain/lifecycle"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type pushServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	PushHandler *handler.PushHandler
}

// NewServer builds the worker server on dispatch.workerPort
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &pushServer{
		port:   params.Cfg.Dispatch.WorkerPort,
		logger: params.Logger.With(slog.String("component", "dispatch-worker")),
		echo:   NewEcho(params.Cfg, params.Logger, params.Metrics, params.PushHandler),
	}
	srv.echo.Server.ReadHeaderTimeout = 5 * time.Second

	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// NewEcho wires the worker routes. Pub/Sub treats any non-2xx answer from /push as a nack.
func NewEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		middleware.NewMetricsMiddleware(m).Handle,
	)

	e.GET("/health", response.OK)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.POST("/push", push.HandlePush)

	return e
}

func (s *pushServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Listening for push deliveries", slog.String("hostPort", hostPort))

	err := s.echo.Start(hostPort)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *pushServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Draining push deliveries")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
