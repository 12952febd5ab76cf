package usecase

import (
	"context"

	"farmlink/internal/domain/entity"
)

// RefreshCoordinator recomputes dashboard snapshots off the request path
type RefreshCoordinator interface {
	// ScheduleRefresh queues a buyer snapshot recomputation and returns immediately
	ScheduleRefresh(ctx context.Context, buyerUID, buyerEmail string)

	// ScheduleFarmerRefresh queues a farmer logistics recomputation and returns immediately
	ScheduleFarmerRefresh(ctx context.Context, farmerUID string)

	// RefreshBuyer recomputes and stores the buyer snapshot synchronously. If only the store
	// fails, the computed snapshot is returned together with the error.
	RefreshBuyer(ctx context.Context, buyerUID, buyerEmail string) (*entity.DashboardSnapshot, error)

	// RefreshFarmer recomputes and stores the farmer logistics synchronously, with the same
	// partial result behavior as RefreshBuyer
	RefreshFarmer(ctx context.Context, farmerUID string) (*entity.FarmerLogistics, error)
}

// DashboardUsecase defines the interface for reading dashboards
type DashboardUsecase interface {
	// GetBuyerDashboard returns the caller's snapshot, or nil when none could be produced
	GetBuyerDashboard(ctx context.Context, caller entity.Caller) (*entity.DashboardSnapshot, error)

	// GetFarmerLogistics returns the farmer's deliveries merged with live milestone state
	GetFarmerLogistics(ctx context.Context, caller entity.Caller, farmerUID string) (*entity.FarmerLogistics, error)
}
