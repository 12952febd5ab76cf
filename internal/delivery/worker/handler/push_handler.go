// Package handler contains the Pub/Sub push endpoint of the dispatch worker.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/infra/pubsub"
	"farmlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const revokedReasonDelivery = "delivery"

// TokenValidator checks a Google-signed OIDC token for audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying dispatch events
type PushHandler struct {
	verifyPushAuth bool
	validateToken  TokenValidator
	logger         *slog.Logger
	dispatchUC     usecase.DispatchUsecase
	metrics        *metrics.Metrics
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
	Metrics    *metrics.Metrics
}

// NewPushHandler creates a new Pub/Sub push handler. Push requests are only
// authenticated for the google provider outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		dispatchUC:     params.DispatchUC,
		metrics:        params.Metrics,
	}
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers the message,
// and 200 for everything else, including events that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode dispatch event",
			slog.String("messageID", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := h.withRequestID(ctx, &envelope, event)

	result, err := h.dispatchUC.Deliver(ctx, event)
	if err != nil {
		retryable := usecase.IsRetryable(err)
		reqLogger.Error("[Worker] Failed to dispatch notification",
			slog.String("notificationID", event.NotificationID.String()),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	h.metrics.ObserveDispatch(result)
	h.metrics.ObserveRevoked(revokedReasonDelivery, int64(result.Revoked))

	return c.NoContent(http.StatusOK)
}

// withRequestID prefers the message attribute, then the event, then the push request's own id
func (h *PushHandler) withRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *entity.DispatchEvent) (context.Context, *slog.Logger) {
	requestID := envelope.RequestID()
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	return deliverycontext.Scope(ctx, h.logger, requestID)
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push subscriptions
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
