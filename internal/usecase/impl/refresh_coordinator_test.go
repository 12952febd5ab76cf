package impl

import (
	"context"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	mockRepo "farmlink/internal/mocks/repository"
	mockService "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refreshCoordinatorFixtures struct {
	coordinator   usecase.RefreshCoordinator
	queue         *mockService.MockTaskQueue
	deliveryRepo  *mockRepo.MockDeliveryRepository
	watchlistRepo *mockRepo.MockWatchlistRepository
	snapshots     *mockRepo.MockSnapshotRepository
}

func createTestRefreshCoordinator(t *testing.T) refreshCoordinatorFixtures {
	queue := mockService.NewMockTaskQueue(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	watchlistRepo := mockRepo.NewMockWatchlistRepository(t)
	snapshots := mockRepo.NewMockSnapshotRepository(t)

	coordinator := NewRefreshCoordinator(RefreshCoordinatorParams{
		Queue:         queue,
		DeliveryRepo:  deliveryRepo,
		WatchlistRepo: watchlistRepo,
		Snapshots:     snapshots,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return refreshCoordinatorFixtures{
		coordinator:   coordinator,
		queue:         queue,
		deliveryRepo:  deliveryRepo,
		watchlistRepo: watchlistRepo,
		snapshots:     snapshots,
	}
}

func TestRefreshCoordinator_RefreshBuyer(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()
	delivery := newTestDelivery(t)
	items := []*entity.WatchlistItem{
		{BuyerUID: "buyer-1", ProductID: "lot-9", AddedAt: time.Now()},
		{BuyerUID: "buyer-1", ProductID: "lot-7", AddedAt: time.Now().Add(-time.Hour)},
	}

	fx.watchlistRepo.EXPECT().ListByBuyer(mock.Anything, "buyer-1").Return(items, nil)
	fx.deliveryRepo.EXPECT().ListActiveByBuyer(mock.Anything, "buyer-1", 5).Return([]*entity.Delivery{delivery}, nil)
	fx.deliveryRepo.EXPECT().CountByBuyer(mock.Anything, "buyer-1").Return(entity.DeliveryCounts{Active: 1, Completed: 3}, nil)

	var stored *entity.DashboardSnapshot
	fx.snapshots.EXPECT().
		SaveBuyerSnapshot(ctx, mock.AnythingOfType("*entity.DashboardSnapshot")).
		Run(func(_ context.Context, snapshot *entity.DashboardSnapshot) { stored = snapshot }).
		Return(nil)

	snapshot, err := fx.coordinator.RefreshBuyer(ctx, "buyer-1", "Buyer@Example.com")
	require.NoError(t, err)

	assert.Same(t, stored, snapshot)
	assert.Equal(t, "buyer@example.com", snapshot.BuyerEmail)
	assert.Len(t, snapshot.SavedItems, 2)
	require.Len(t, snapshot.PendingDeliveries, 1)
	assert.Equal(t, delivery.ID, snapshot.PendingDeliveries[0].ID)
	assert.Equal(t, entity.DashboardCounters{SavedItems: 2, ActiveDeliveries: 1, CompletedDeliveries: 3}, snapshot.Counters)
	assert.False(t, snapshot.RefreshedAt.IsZero())
}

func TestRefreshCoordinator_RefreshBuyer_ReadFailure(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()

	fx.watchlistRepo.EXPECT().ListByBuyer(mock.Anything, "buyer-1").Return(nil, errors.New("connection refused"))
	fx.deliveryRepo.EXPECT().ListActiveByBuyer(mock.Anything, "buyer-1", 5).Return(nil, nil).Maybe()
	fx.deliveryRepo.EXPECT().CountByBuyer(mock.Anything, "buyer-1").Return(entity.DeliveryCounts{}, nil).Maybe()

	snapshot, err := fx.coordinator.RefreshBuyer(ctx, "buyer-1", "")
	require.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestRefreshCoordinator_RefreshBuyer_StoreFailureKeepsResult(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()

	fx.watchlistRepo.EXPECT().ListByBuyer(mock.Anything, "buyer-1").Return(nil, nil)
	fx.deliveryRepo.EXPECT().ListActiveByBuyer(mock.Anything, "buyer-1", 5).Return(nil, nil)
	fx.deliveryRepo.EXPECT().CountByBuyer(mock.Anything, "buyer-1").Return(entity.DeliveryCounts{}, nil)
	fx.snapshots.EXPECT().SaveBuyerSnapshot(ctx, mock.Anything).Return(errors.New("redis down"))

	snapshot, err := fx.coordinator.RefreshBuyer(ctx, "buyer-1", "")
	require.Error(t, err)
	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.SavedItems)
}

func TestRefreshCoordinator_RefreshFarmer(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()
	delivery := newTestDelivery(t)

	fx.deliveryRepo.EXPECT().ListRecentByFarmer(mock.Anything, "farmer-1", 20).Return([]*entity.Delivery{delivery}, nil)
	fx.deliveryRepo.EXPECT().CountByFarmer(mock.Anything, "farmer-1").Return(entity.DeliveryCounts{Active: 1}, nil)
	fx.snapshots.EXPECT().SaveFarmerLogistics(ctx, mock.AnythingOfType("*entity.FarmerLogistics")).Return(nil)

	logistics, err := fx.coordinator.RefreshFarmer(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", logistics.FarmerUID)
	require.Len(t, logistics.Deliveries, 1)
	assert.Equal(t, 1, logistics.Counters.ActiveDeliveries)
	assert.False(t, logistics.Live)
}

func TestRefreshCoordinator_ScheduleRefresh_RunsOnQueue(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()

	fx.queue.EXPECT().
		Submit(ctx, "buyer_refresh:buyer-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, task service.Task) bool {
			// a failing refresh is reported to the queue, never to the caller
			assert.Error(t, task(ctx))

			return true
		})
	fx.watchlistRepo.EXPECT().ListByBuyer(mock.Anything, "buyer-1").Return(nil, errors.New("timeout"))
	fx.deliveryRepo.EXPECT().ListActiveByBuyer(mock.Anything, "buyer-1", 5).Return(nil, nil).Maybe()
	fx.deliveryRepo.EXPECT().CountByBuyer(mock.Anything, "buyer-1").Return(entity.DeliveryCounts{}, nil).Maybe()

	fx.coordinator.ScheduleRefresh(ctx, "buyer-1", "buyer@example.com")
}

func TestRefreshCoordinator_ScheduleFarmerRefresh_Dropped(t *testing.T) {
	fx := createTestRefreshCoordinator(t)
	ctx := context.Background()

	fx.queue.EXPECT().Submit(ctx, "farmer_refresh:farmer-1", mock.Anything).Return(false)

	fx.coordinator.ScheduleFarmerRefresh(ctx, "farmer-1")
}

func TestRefreshCoordinator_ScheduleWithoutUID(t *testing.T) {
	fx := createTestRefreshCoordinator(t)

	fx.coordinator.ScheduleRefresh(context.Background(), "", "")
	fx.coordinator.ScheduleFarmerRefresh(context.Background(), "")
}
