package impl

import (
	"context"
	"log/slog"
	"strings"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type dashboardService struct {
	coordinator  usecase.RefreshCoordinator
	snapshots    repository.SnapshotRepository
	deliveryRepo repository.DeliveryRepository
	display      displayFormat
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Coordinator  usecase.RefreshCoordinator
	Snapshots    repository.SnapshotRepository
	DeliveryRepo repository.DeliveryRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		coordinator:  params.Coordinator,
		snapshots:    params.Snapshots,
		deliveryRepo: params.DeliveryRepo,
		display:      newDisplayFormat(params.Config, params.Logger),
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBuyerDashboard serves the cached snapshot. On a miss it recomputes inline, and when
// that fails it returns nil and leaves the work to a background refresh.
func (srv *dashboardService) GetBuyerDashboard(ctx context.Context, caller entity.Caller) (*entity.DashboardSnapshot, error) {
	snapshot, err := srv.snapshots.GetBuyerSnapshot(ctx, caller.UID)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, repository.ErrSnapshotNotFound) {
		srv.log(ctx).Warn("Snapshot store unavailable, recomputing dashboard", slog.Any("error", err))
	}

	snapshot, err = srv.coordinator.RefreshBuyer(ctx, caller.UID, caller.Email)
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh buyer dashboard", slog.String("buyerUID", caller.UID), slog.Any("error", err))
	}
	if snapshot == nil {
		srv.coordinator.ScheduleRefresh(ctx, caller.UID, caller.Email)
	}

	return snapshot, nil
}

// GetFarmerLogistics merges the stored snapshot with the live milestone state of its deliveries.
func (srv *dashboardService) GetFarmerLogistics(ctx context.Context, caller entity.Caller, farmerUID string) (*entity.FarmerLogistics, error) {
	farmerUID = strings.TrimSpace(farmerUID)
	if farmerUID == "" {
		return nil, domainerrors.ErrBadRequest.WithDetails("farmerId is required")
	}
	if !caller.IsAdmin() && !caller.Is(farmerUID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("logistics belong to another farmer")
	}

	logistics, err := srv.snapshots.GetFarmerLogistics(ctx, farmerUID)
	if err == nil {
		srv.mergeLive(ctx, logistics)

		return logistics, nil
	}
	if !errors.Is(err, repository.ErrSnapshotNotFound) {
		srv.log(ctx).Warn("Snapshot store unavailable, reading live logistics", slog.Any("error", err))
	}

	logistics, err = srv.coordinator.RefreshFarmer(ctx, farmerUID)
	if logistics == nil {
		return nil, unavailable(ctx, srv.log(ctx), err, "failed to build farmer logistics")
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to store farmer logistics", slog.Any("error", err))
	}
	logistics.Live = true

	return logistics, nil
}

// mergeLive replaces each snapshot entry with the current state of its delivery.
// Entries whose delivery cannot be read keep their snapshot state.
func (srv *dashboardService) mergeLive(ctx context.Context, logistics *entity.FarmerLogistics) {
	if len(logistics.Deliveries) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(logistics.Deliveries))
	for _, view := range logistics.Deliveries {
		ids = append(ids, view.ID)
	}

	live, err := srv.deliveryRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Warn("Failed to read live deliveries, serving snapshot", slog.Any("error", err))

		return
	}

	byID := make(map[uuid.UUID]*entity.Delivery, len(live))
	for _, d := range live {
		byID[d.ID] = d
	}

	for i, view := range logistics.Deliveries {
		if d, ok := byID[view.ID]; ok {
			logistics.Deliveries[i] = srv.display.view(d)
		}
	}
}
