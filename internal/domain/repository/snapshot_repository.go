package repository

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no snapshot has been computed yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository stores precomputed dashboards. Saves always overwrite the whole record.
type SnapshotRepository interface {
	GetBuyerSnapshot(ctx context.Context, buyerUID string) (*entity.DashboardSnapshot, error)
	SaveBuyerSnapshot(ctx context.Context, snapshot *entity.DashboardSnapshot) error

	GetFarmerLogistics(ctx context.Context, farmerUID string) (*entity.FarmerLogistics, error)
	SaveFarmerLogistics(ctx context.Context, logistics *entity.FarmerLogistics) error
}
