package impl

import (
	"context"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	mockRepo "farmlink/internal/mocks/repository"
	mockUsecase "farmlink/internal/mocks/usecase"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	coordinator  *mockUsecase.MockRefreshCoordinator
	snapshots    *mockRepo.MockSnapshotRepository
	deliveryRepo *mockRepo.MockDeliveryRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	coordinator := mockUsecase.NewMockRefreshCoordinator(t)
	snapshots := mockRepo.NewMockSnapshotRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

	return dashboardServiceFixtures{
		service: NewDashboardService(DashboardServiceParams{
			Coordinator:  coordinator,
			Snapshots:    snapshots,
			DeliveryRepo: deliveryRepo,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		coordinator:  coordinator,
		snapshots:    snapshots,
		deliveryRepo: deliveryRepo,
	}
}

func TestDashboardService_GetBuyerDashboard_Cached(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	cached := &entity.DashboardSnapshot{BuyerUID: "buyer-1"}

	fx.snapshots.EXPECT().GetBuyerSnapshot(ctx, "buyer-1").Return(cached, nil)

	snapshot, err := fx.service.GetBuyerDashboard(ctx, buyerCaller)
	require.NoError(t, err)
	assert.Same(t, cached, snapshot)
}

func TestDashboardService_GetBuyerDashboard_MissRecomputes(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()
	fresh := &entity.DashboardSnapshot{BuyerUID: "buyer-1"}

	fx.snapshots.EXPECT().GetBuyerSnapshot(ctx, "buyer-1").Return(nil, repository.ErrSnapshotNotFound)
	fx.coordinator.EXPECT().RefreshBuyer(ctx, "buyer-1", "buyer@example.com").Return(fresh, nil)

	snapshot, err := fx.service.GetBuyerDashboard(ctx, buyerCaller)
	require.NoError(t, err)
	assert.Same(t, fresh, snapshot)
}

func TestDashboardService_GetBuyerDashboard_FailureReturnsNil(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.snapshots.EXPECT().GetBuyerSnapshot(ctx, "buyer-1").Return(nil, errors.New("redis down"))
	fx.coordinator.EXPECT().RefreshBuyer(ctx, "buyer-1", "buyer@example.com").Return(nil, errors.New("postgres down"))
	fx.coordinator.EXPECT().ScheduleRefresh(ctx, "buyer-1", "buyer@example.com").Return()

	snapshot, err := fx.service.GetBuyerDashboard(ctx, buyerCaller)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestDashboardService_GetFarmerLogistics_MergesLiveState(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	delivery := newTestDelivery(t)
	stale := entity.FormatForDisplay(delivery, time.UTC, "")
	gone := entity.DeliveryView{ID: uuid.New(), Status: "Packed"}

	live := *delivery
	live.Events = append([]entity.DeliveryEvent(nil), delivery.Events...)
	require.NoError(t, live.Advance(1, time.Now()))

	fx.snapshots.EXPECT().GetFarmerLogistics(ctx, "farmer-1").Return(&entity.FarmerLogistics{
		FarmerUID:  "farmer-1",
		Deliveries: []entity.DeliveryView{stale, gone},
	}, nil)
	fx.deliveryRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{delivery.ID, gone.ID}).Return([]*entity.Delivery{&live}, nil)

	logistics, err := fx.service.GetFarmerLogistics(ctx, farmerCaller, "farmer-1")
	require.NoError(t, err)

	require.Len(t, logistics.Deliveries, 2)
	assert.Equal(t, "Packed", logistics.Deliveries[0].Status)
	assert.Equal(t, 1, logistics.Deliveries[0].CurrentStep)
	assert.Equal(t, gone, logistics.Deliveries[1])
}

func TestDashboardService_GetFarmerLogistics_MissBuildsLive(t *testing.T) {
	fx := createTestDashboardService(t)
	ctx := context.Background()

	fx.snapshots.EXPECT().GetFarmerLogistics(ctx, "farmer-1").Return(nil, repository.ErrSnapshotNotFound)
	fx.coordinator.EXPECT().RefreshFarmer(ctx, "farmer-1").Return(&entity.FarmerLogistics{FarmerUID: "farmer-1"}, nil)

	logistics, err := fx.service.GetFarmerLogistics(ctx, adminCaller, "farmer-1")
	require.NoError(t, err)
	assert.True(t, logistics.Live)
}

func TestDashboardService_GetFarmerLogistics_Errors(t *testing.T) {
	t.Run("missing farmer id", func(t *testing.T) {
		fx := createTestDashboardService(t)

		_, err := fx.service.GetFarmerLogistics(context.Background(), farmerCaller, " ")
		assertAppError(t, err, "BAD_REQUEST")
	})

	t.Run("another farmer", func(t *testing.T) {
		fx := createTestDashboardService(t)

		_, err := fx.service.GetFarmerLogistics(context.Background(), farmerCaller, "farmer-2")
		assertAppError(t, err, "FORBIDDEN")
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		fx := createTestDashboardService(t)
		ctx := context.Background()

		fx.snapshots.EXPECT().GetFarmerLogistics(ctx, "farmer-1").Return(nil, repository.ErrSnapshotNotFound)
		fx.coordinator.EXPECT().RefreshFarmer(ctx, "farmer-1").Return(nil, errors.New("postgres down"))

		_, err := fx.service.GetFarmerLogistics(ctx, farmerCaller, "farmer-1")
		assertAppError(t, err, "UNAVAILABLE")
	})
}
