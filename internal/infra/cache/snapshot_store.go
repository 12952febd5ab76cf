package cache

import (
	"context"
	"encoding/json"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	buyerSnapshotPrefix  = "dashboard:buyer:"
	farmerSnapshotPrefix  = "dashboard:farmer:"
)

// snapshotStore implements repository.SnapshotRepository with one JSON value per owner.
type snapshotStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewSnapshotStore is the fx constructor of the snapshot repository
func NewSnapshotStore(client *redis.Client, cfg *config.Config) repository.SnapshotRepository {
	return NewSnapshotStoreWithClient(client, cfg.Redis.KeyPrefix, cfg.Redis.SnapshotTTL)
}

// NewSnapshotStoreWithClient creates a store on an existing client. A zero ttl keeps snapshots forever.
func NewSnapshotStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) repository.SnapshotRepository {
	return &snapshotStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// GetBuyerSnapshot loads the buyer snapshot or returns repository.ErrSnapshotNotFound
func (s *snapshotStore) GetBuyerSnapshot(ctx context.Context, buyerUID string) (*entity.DashboardSnapshot, error) {
	var snapshot entity.DashboardSnapshot
	if err := s.get(ctx, s.keyPrefix+buyerSnapshotPrefix+buyerUID, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// SaveBuyerSnapshot overwrites the buyer snapshot
func (s *snapshotStore) SaveBuyerSnapshot(ctx context.Context, snapshot *entity.DashboardSnapshot) error {
	return s.set(ctx, s.keyPrefix+buyerSnapshotPrefix+snapshot.BuyerUID, snapshot)
}

// GetFarmerLogistics loads the farmer snapshot or returns repository.ErrSnapshotNotFound
func (s *snapshotStore) GetFarmerLogistics(ctx context.Context, farmerUID string) (*entity.FarmerLogistics, error) {
	var logistics entity.FarmerLogistics
	if err := s.get(ctx, s.keyPrefix+farmerSnapshotPrefix+farmerUID, &logistics); err != nil {
		return nil, err
	}

	return &logistics, nil
}

// SaveFarmerLogistics overwrites the farmer snapshot
func (s *snapshotStore) SaveFarmerLogistics(ctx context.Context, logistics *entity.FarmerLogistics) error {
	return s.set(ctx, s.keyPrefix+farmerSnapshotPrefix+logistics.FarmerUID, logistics)
}

func (s *snapshotStore) get(ctx context.Context, key string, dst any) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return repository.ErrSnapshotNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "failed to decode snapshot %s", key)
	}

	return nil
}

func (s *snapshotStore) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}
