package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmlink/config"
	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/router"
	"farmlink/internal/delivery/api/router/handler"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/infra/auth"
	"farmlink/internal/infra/metrics"
	mockUsecase "farmlink/internal/mocks/usecase"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	e           *echo.Echo
	token       func(caller entity.Caller) string
	channelUC   *mockUsecase.MockChannelUsecase
	watchlistUC *mockUsecase.MockWatchlistUsecase
	dashboardUC *mockUsecase.MockDashboardUsecase
	deliveryUC  *mockUsecase.MockDeliveryUsecase
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

var (
	buyer  = entity.Caller{UID: "buyer-1", Email: "buyer@example.com", Name: "Corner Deli", Roles: entity.Roles{entity.RoleBuyer}}
	farmer = entity.Caller{UID: "farmer-1", Email: "farmer@example.com", Name: "Green Acres", Roles: entity.Roles{entity.RoleFarmer}}
)

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{Admin: &config.AdminConfig{Emails: []string{"Ops@Example.com"}}}
	cfg.SecretKey.Access = "test-secret-key-with-enough-entropy"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	fx := apiFixtures{
		channelUC:   mockUsecase.NewMockChannelUsecase(t),
		watchlistUC: mockUsecase.NewMockWatchlistUsecase(t),
		dashboardUC: mockUsecase.NewMockDashboardUsecase(t),
		deliveryUC:  mockUsecase.NewMockDeliveryUsecase(t),
	}
	fx.token = func(caller entity.Caller) string {
		token, err := tokens.GenerateAccessToken(caller, time.Hour)
		require.NoError(t, err)

		return token
	}

	r := router.NewRouter(router.RouterParams{
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{ChannelUC: fx.channelUC, Logger: logger}),
		WatchlistHandler:    handler.NewWatchlistHandler(handler.WatchlistHandlerParams{WatchlistUC: fx.watchlistUC}),
		DashboardHandler:    handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: fx.dashboardUC}),
		DeliveryHandler:     handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: fx.deliveryUC, Metrics: m}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokens, cfg),
		Metrics:             m,
	})
	fx.e = NewEcho(cfg, logger, m, r)

	return fx
}

func (fx apiFixtures) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	fx.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestAPI_RejectsUnauthenticatedBeforeAnyMutation(t *testing.T) {
	id := uuid.NewString()
	routes := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/notifications/register", `{"token":"fcm-token-123456"}`},
		{http.MethodDelete, "/notifications/register", `{"token":"fcm-token-123456"}`},
		{http.MethodPost, "/watchlist", `{"productId":"lot-7"}`},
		{http.MethodDelete, "/watchlist?productId=lot-7", ""},
		{http.MethodGet, "/dashboards/buyer", ""},
		{http.MethodGet, "/dashboards/farmer?farmerId=farmer-1", ""},
		{http.MethodPost, "/deliveries", `{"bidId":"b1"}`},
		{http.MethodGet, "/deliveries/" + id, ""},
		{http.MethodPost, "/deliveries/" + id + "/milestones", `{"targetStep":1}`},
		{http.MethodGet, "/deliveries/" + id + "/qr", ""},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			// the mocks fail the test on any call
			fx := createTestAPI(t)

			for _, token := range []string{"", "not-a-jwt"} {
				rec, env := fx.do(t, route.method, route.target, route.body, token)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				require.NotNil(t, env.Error)
				assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
				assert.NotEmpty(t, env.Meta.RequestID)
			}
		})
	}
}

func TestAPI_RegisterChannel(t *testing.T) {
	fx := createTestAPI(t)

	fx.channelUC.EXPECT().
		Register(mock.Anything, buyer, &usecase.RegisterChannelInput{Token: "fcm-token-123456", Platform: "web", Label: "laptop"}).
		Return(&entity.NotificationChannel{Token: "fcm-token-123456", UID: "buyer-1"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/notifications/register",
		`{"token":"fcm-token-123456","platform":"web","label":"laptop"}`, fx.token(buyer))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Status)
}

func TestAPI_RegisterChannel_Errors(t *testing.T) {
	t.Run("token too short", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.channelUC.EXPECT().Register(mock.Anything, buyer, mock.Anything).
			Return(nil, domainerrors.ErrTokenTooShort.WithDetails("token must be at least 10 characters"))

		rec, env := fx.do(t, http.MethodPost, "/notifications/register", `{"token":"short"}`, fx.token(buyer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "TOKEN_TOO_SHORT", env.Error.Code)
		assert.Equal(t, "token must be at least 10 characters", env.Error.Details)
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, env := fx.do(t, http.MethodPost, "/notifications/register", `{}`, fx.token(buyer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
		assert.Equal(t, "token is required", env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, env := fx.do(t, http.MethodPost, "/notifications/register", `{"token":`, fx.token(buyer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})
}

func TestAPI_UnregisterChannel(t *testing.T) {
	fx := createTestAPI(t)
	fx.channelUC.EXPECT().Unregister(mock.Anything, buyer, "fcm-token-123456").Return(nil)

	rec, env := fx.do(t, http.MethodDelete, "/notifications/register", `{"token":"fcm-token-123456"}`, fx.token(buyer))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", env.Status)
}

func TestAPI_Watchlist(t *testing.T) {
	fx := createTestAPI(t)
	fx.watchlistUC.EXPECT().AddItem(mock.Anything, buyer, "lot-7").Return(nil)
	fx.watchlistUC.EXPECT().RemoveItem(mock.Anything, buyer, "lot-7").Return(nil)

	rec, _ := fx.do(t, http.MethodPost, "/watchlist", `{"productId":"lot-7"}`, fx.token(buyer))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodDelete, "/watchlist?productId=lot-7", "", fx.token(buyer))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_BuyerDashboard(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.dashboardUC.EXPECT().GetBuyerDashboard(mock.Anything, buyer).
			Return(&entity.DashboardSnapshot{BuyerUID: "buyer-1", Counters: entity.DashboardCounters{SavedItems: 2}}, nil)

		rec, env := fx.do(t, http.MethodGet, "/dashboards/buyer", "", fx.token(buyer))

		assert.Equal(t, http.StatusOK, rec.Code)
		var snapshot entity.DashboardSnapshot
		require.NoError(t, json.Unmarshal(env.Data, &snapshot))
		assert.Equal(t, 2, snapshot.Counters.SavedItems)
	})

	t.Run("not yet available", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.dashboardUC.EXPECT().GetBuyerDashboard(mock.Anything, buyer).Return(nil, nil)

		rec, env := fx.do(t, http.MethodGet, "/dashboards/buyer", "", fx.token(buyer))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "null", string(env.Data))
	})
}

func TestAPI_FarmerLogistics(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "missing farmer", err: domainerrors.ErrBadRequest.WithDetails("farmerId is required"), wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "other farmer", err: domainerrors.ErrForbidden.WrapMessage("logistics belong to another farmer"), wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)

			var logistics *entity.FarmerLogistics
			if tt.err == nil {
				logistics = &entity.FarmerLogistics{FarmerUID: "farmer-1"}
			}
			fx.dashboardUC.EXPECT().GetFarmerLogistics(mock.Anything, farmer, "farmer-1").Return(logistics, tt.err)

			rec, env := fx.do(t, http.MethodGet, "/dashboards/farmer?farmerId=farmer-1", "", fx.token(farmer))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}

const createDeliveryBody = `{
	"bidId": "b1",
	"productId": "lot-7",
	"farmer": {"uid": "farmer-1", "name": "Green Acres", "email": "farmer@example.com"},
	"buyer": {"uid": "buyer-1", "name": "Corner Deli"},
	"terms": {"deliveryOption": "express", "quantity": "100", "unit": "kg", "pricePerUnit": "50"}
}`

func TestAPI_CreateDelivery(t *testing.T) {
	fx := createTestAPI(t)
	id := uuid.New()

	fx.deliveryUC.EXPECT().
		CreateDelivery(mock.Anything, farmer, mock.MatchedBy(func(input *usecase.CreateDeliveryInput) bool {
			return input.BidID == "b1" &&
				input.Farmer.UID == "farmer-1" &&
				input.Buyer.Name == "Corner Deli" &&
				input.Terms.DeliveryOption == entity.DeliveryOptionExpress &&
				input.Terms.Quantity.String() == "100"
		})).
		Return(&entity.DeliveryView{ID: id, Status: "Order confirmed", ETA: "1-2 days"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/deliveries", createDeliveryBody, fx.token(farmer))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var view entity.DeliveryView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, id, view.ID)
	assert.Equal(t, "1-2 days", view.ETA)
}

func TestAPI_CreateDelivery_Invalid(t *testing.T) {
	bodies := map[string]string{
		"unknown option":    strings.Replace(createDeliveryBody, `"express"`, `"drone"`, 1),
		"missing buyer uid": strings.Replace(createDeliveryBody, `"uid": "buyer-1", `, "", 1),
		"zero quantity":     strings.Replace(createDeliveryBody, `"quantity": "100"`, `"quantity": "0"`, 1),
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			fx := createTestAPI(t)

			rec, env := fx.do(t, http.MethodPost, "/deliveries", body, fx.token(farmer))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
		})
	}
}

func TestAPI_AdvanceMilestone(t *testing.T) {
	id := uuid.New()

	t.Run("ok", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.deliveryUC.EXPECT().AdvanceMilestone(mock.Anything, farmer, id, 1).
			Return(&entity.DeliveryView{ID: id, Status: "Packed", CurrentStep: 1}, nil)

		rec, _ := fx.do(t, http.MethodPost, "/deliveries/"+id.String()+"/milestones", `{"targetStep":1}`, fx.token(farmer))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("skipped milestone", func(t *testing.T) {
		fx := createTestAPI(t)
		fx.deliveryUC.EXPECT().AdvanceMilestone(mock.Anything, farmer, id, 3).
			Return(nil, domainerrors.ErrInvalidTransition.WithDetails("step 3 cannot follow step 0"))

		rec, env := fx.do(t, http.MethodPost, "/deliveries/"+id.String()+"/milestones", `{"targetStep":3}`, fx.token(farmer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	})

	t.Run("missing target", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, env := fx.do(t, http.MethodPost, "/deliveries/"+id.String()+"/milestones", `{}`, fx.token(farmer))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		fx := createTestAPI(t)

		rec, env := fx.do(t, http.MethodPost, "/deliveries/not-a-uuid/milestones", `{"targetStep":1}`, fx.token(farmer))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DELIVERY_NOT_FOUND", env.Error.Code)
	})
}

func TestAPI_GetDelivery_AdminByEmail(t *testing.T) {
	fx := createTestAPI(t)
	id := uuid.New()
	ops := entity.Caller{UID: "ops-1", Email: "ops@example.com", Roles: entity.Roles{}}

	fx.deliveryUC.EXPECT().
		GetDelivery(mock.Anything, mock.MatchedBy(func(caller entity.Caller) bool { return caller.IsAdmin() }), id).
		Return(&entity.DeliveryView{ID: id}, nil)

	rec, _ := fx.do(t, http.MethodGet, "/deliveries/"+id.String(), "", fx.token(ops))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_TrackingQR(t *testing.T) {
	fx := createTestAPI(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.deliveryUC.EXPECT().TrackingQR(mock.Anything, farmer, id).Return(png, nil)

	rec, _ := fx.do(t, http.MethodGet, "/deliveries/"+id.String()+"/qr", "", fx.token(farmer))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_Unavailable(t *testing.T) {
	fx := createTestAPI(t)
	fx.watchlistUC.EXPECT().AddItem(mock.Anything, buyer, "lot-7").
		Return(domainerrors.ErrUnavailable.WrapMessage("failed to save watchlist item"))

	rec, env := fx.do(t, http.MethodPost, "/watchlist", `{"productId":"lot-7"}`, fx.token(buyer))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	fx := createTestAPI(t)

	rec, _ := fx.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
}
