package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Dashboard: &config.DashboardConfig{PendingLimit: 5, FarmerLimit: 20},
		Dispatch:  &config.DispatchConfig{BatchSize: 500, MaxConsecutiveFailures: 5},
		Display:   &config.DisplayConfig{Timezone: "UTC", TimeLayout: entity.DefaultDisplayLayout},
	}
}

var (
	testFarmer = entity.Party{UID: "farmer-1", Name: "Green Acres", Email: "farmer@example.com"}
	testBuyer  = entity.Party{UID: "buyer-1", Name: "Corner Deli", Email: "buyer@example.com"}

	farmerCaller   = entity.Caller{UID: "farmer-1", Email: "farmer@example.com", Roles: entity.Roles{entity.RoleFarmer}}
	buyerCaller    = entity.Caller{UID: "buyer-1", Email: "buyer@example.com", Roles: entity.Roles{entity.RoleBuyer}}
	adminCaller    = entity.Caller{UID: "ops-1", Email: "ops@example.com", Roles: entity.Roles{entity.RoleAdmin}}
	strangerCaller = entity.Caller{UID: "someone-else", Roles: entity.Roles{entity.RoleBuyer}}
)

func newTestTerms() entity.Terms {
	return entity.Terms{
		DeliveryOption: entity.DeliveryOptionStandard,
		Quantity:       decimal.NewFromInt(100),
		Unit:           "kg",
		PricePerUnit:   decimal.NewFromInt(50),
	}
}

func newTestDelivery(t *testing.T) *entity.Delivery {
	t.Helper()

	d, err := entity.NewDelivery(entity.NewDeliveryParams{
		BidID:     "b1",
		ProductID: "lot-7",
		Farmer:    testFarmer,
		Buyer:     testBuyer,
		Terms:     newTestTerms(),
	}, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return d
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}
