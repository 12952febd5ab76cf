package cache

import (
	"context"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (repository.SnapshotRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSnapshotStoreWithClient(client, "test:", ttl), server
}

func TestSnapshotStore_BuyerSnapshotOverwrite(t *testing.T) {
	store, server := newTestStore(t, 0)
	ctx := context.Background()

	_, err := store.GetBuyerSnapshot(ctx, "buyer-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	refreshedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := &entity.DashboardSnapshot{
		BuyerUID:   "buyer-1",
		SavedItems: []entity.WatchlistItem{{BuyerUID: "buyer-1", ProductID: "p-1", AddedAt: refreshedAt}},
		PendingDeliveries: []entity.DeliveryView{
			{ID: uuid.New(), Status: "Packed"},
		},
		Counters:    entity.DashboardCounters{SavedItems: 1, ActiveDeliveries: 1},
		RefreshedAt: refreshedAt,
	}
	require.NoError(t, store.SaveBuyerSnapshot(ctx, first))
	assert.True(t, server.Exists("test:dashboard:buyer:buyer-1"))

	second := &entity.DashboardSnapshot{
		BuyerUID:    "buyer-1",
		Counters:    entity.DashboardCounters{CompletedDeliveries: 1},
		RefreshedAt: refreshedAt.Add(time.Minute),
	}
	require.NoError(t, store.SaveBuyerSnapshot(ctx, second))

	loaded, err := store.GetBuyerSnapshot(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.SavedItems, "saves replace the whole record")
	assert.Empty(t, loaded.PendingDeliveries)
	assert.Equal(t, second.Counters, loaded.Counters)
	assert.True(t, loaded.RefreshedAt.Equal(second.RefreshedAt))
}

func TestSnapshotStore_FarmerLogisticsWithTTL(t *testing.T) {
	store, server := newTestStore(t, time.Hour)
	ctx := context.Background()

	logistics := &entity.FarmerLogistics{
		FarmerUID:  "farmer-1",
		Deliveries: []entity.DeliveryView{{ID: uuid.New(), Status: "In transit"}},
		Counters:   entity.LogisticsCounters{ActiveDeliveries: 1},
	}
	require.NoError(t, store.SaveFarmerLogistics(ctx, logistics))
	assert.Equal(t, time.Hour, server.TTL("test:dashboard:farmer:farmer-1"))

	loaded, err := store.GetFarmerLogistics(ctx, "farmer-1")
	require.NoError(t, err)
	require.Len(t, loaded.Deliveries, 1)
	assert.Equal(t, logistics.Deliveries[0].ID, loaded.Deliveries[0].ID)

	server.FastForward(2 * time.Hour)
	_, err = store.GetFarmerLogistics(ctx, "farmer-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotStore_CorruptValue(t *testing.T) {
	store, server := newTestStore(t, 0)
	require.NoError(t, server.Set("test:dashboard:buyer:buyer-x", "{not json"))

	_, err := store.GetBuyerSnapshot(context.Background(), "buyer-x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotStore_RedisDown(t *testing.T) {
	store, server := newTestStore(t, 0)
	server.Close()

	err := store.SaveBuyerSnapshot(context.Background(), &entity.DashboardSnapshot{BuyerUID: "buyer-1"})
	assert.Error(t, err)
}
