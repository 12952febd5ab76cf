package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"
	"farmlink/internal/errors"
	"farmlink/internal/infra/metrics"
	"farmlink/internal/infra/pubsub"
	mockUsecase "farmlink/internal/mocks/usecase"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler    *PushHandler
	dispatchUC *mockUsecase.MockDispatchUsecase
	metrics    *metrics.Metrics
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	return pushHandlerFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:     cfg,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
			DispatchUC: dispatchUC,
			Metrics:    m,
		}),
		dispatchUC: dispatchUC,
		metrics:    m,
	}
}

func newTestEvent() *entity.DispatchEvent {
	return &entity.DispatchEvent{
		RequestID:      "req-7",
		NotificationID: uuid.New(),
		UID:            "buyer-1",
		Title:          "Packed",
		Body:           "Farmer is packing your produce",
	}
}

func pushBody(t *testing.T, event *entity.DispatchEvent) []byte {
	t.Helper()

	data, err := pubsub.EncodeEvent(event)
	require.NoError(t, err)
	body, err := json.Marshal(pubsub.NewPushEnvelope(event, data, "projects/local/subscriptions/dispatch-sub"))
	require.NoError(t, err)

	return body
}

func (fx pushHandlerFixtures) post(body []byte, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", fx.handler.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_Delivers(t *testing.T) {
	fx := createTestPushHandler(t, &config.Config{})
	event := newTestEvent()

	fx.dispatchUC.EXPECT().
		Deliver(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-7"
		}), event).
		Return(&entity.DispatchResult{Channels: 3, Sent: 2, Failed: 1, Revoked: 1}, nil)

	rec := fx.post(pushBody(t, event), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 2, testutil.ToFloat64(fx.metrics.DispatchMessages.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.DispatchMessages.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.ChannelsRevoked.WithLabelValues("delivery")), 0)
}

func TestPushHandler_FailureStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "retryable", err: usecase.Retryable(errors.New("registry down")), wantStatus: http.StatusServiceUnavailable},
		{name: "permanent", err: errors.New("dispatch event has no recipient"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})
			event := newTestEvent()

			fx.dispatchUC.EXPECT().Deliver(mock.Anything, event).Return(nil, tt.err)

			rec := fx.post(pushBody(t, event), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	bodies := map[string][]byte{
		"not json":     []byte(`{"message":`),
		"not base64":   []byte(`{"message":{"data":"%%%"}}`),
		"not an event": []byte(`{"message":{"data":"bm90LWpzb24="}}`),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			fx := createTestPushHandler(t, &config.Config{})

			rec := fx.post(body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	t.Run("missing token", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)

		rec := fx.post(pushBody(t, newTestEvent()), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)
		fx.handler.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := fx.post(pushBody(t, newTestEvent()), "Bearer signed")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestPushHandler(t, cfg)
		event := newTestEvent()

		var audience string
		fx.handler.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud
			assert.Equal(t, "signed", token)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		fx.dispatchUC.EXPECT().Deliver(mock.Anything, event).Return(&entity.DispatchResult{}, nil)

		rec := fx.post(pushBody(t, event), "Bearer signed")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}
