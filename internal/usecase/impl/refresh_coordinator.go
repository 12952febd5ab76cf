package impl

import (
	"context"
	"log/slog"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"
	"farmlink/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPendingLimit = 5
	defaultFarmerLimit  = 20
)

// refreshCoordinator recomputes dashboard snapshots. Every recomputation
// overwrites the whole snapshot, so overlapping runs are harmless.
type refreshCoordinator struct {
	queue         service.TaskQueue
	deliveryRepo  repository.DeliveryRepository
	watchlistRepo repository.WatchlistRepository
	snapshots     repository.SnapshotRepository
	pendingLimit  int
	farmerLimit   int
	display       displayFormat
	logger        *slog.Logger
}

// RefreshCoordinatorParams holds dependencies for the RefreshCoordinator, injected by Fx.
type RefreshCoordinatorParams struct {
	fx.In

	Queue         service.TaskQueue
	DeliveryRepo  repository.DeliveryRepository
	WatchlistRepo repository.WatchlistRepository
	Snapshots     repository.SnapshotRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRefreshCoordinator is the constructor for refreshCoordinator.
func NewRefreshCoordinator(params RefreshCoordinatorParams) usecase.RefreshCoordinator {
	pendingLimit, farmerLimit := defaultPendingLimit, defaultFarmerLimit
	if params.Config != nil && params.Config.Dashboard != nil {
		if params.Config.Dashboard.PendingLimit > 0 {
			pendingLimit = params.Config.Dashboard.PendingLimit
		}
		if params.Config.Dashboard.FarmerLimit > 0 {
			farmerLimit = params.Config.Dashboard.FarmerLimit
		}
	}

	return &refreshCoordinator{
		queue:         params.Queue,
		deliveryRepo:  params.DeliveryRepo,
		watchlistRepo: params.WatchlistRepo,
		snapshots:     params.Snapshots,
		pendingLimit:  pendingLimit,
		farmerLimit:   farmerLimit,
		display:       newDisplayFormat(params.Config, params.Logger),
		logger:        params.Logger,
	}
}

func (c *refreshCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// ScheduleRefresh never fails the caller; queue and task failures are only logged.
func (c *refreshCoordinator) ScheduleRefresh(ctx context.Context, buyerUID, buyerEmail string) {
	if buyerUID == "" {
		return
	}

	c.queue.Submit(ctx, constants.TaskKey(constants.TaskKindBuyerRefresh, buyerUID), func(taskCtx context.Context) error {
		_, err := c.RefreshBuyer(taskCtx, buyerUID, buyerEmail)

		return err
	})
}

func (c *refreshCoordinator) ScheduleFarmerRefresh(ctx context.Context, farmerUID string) {
	if farmerUID == "" {
		return
	}

	c.queue.Submit(ctx, constants.TaskKey(constants.TaskKindFarmerRefresh, farmerUID), func(taskCtx context.Context) error {
		_, err := c.RefreshFarmer(taskCtx, farmerUID)

		return err
	})
}

// RefreshBuyer reads the watchlist and the ledger concurrently and stores a new snapshot.
// When only the store fails the computed snapshot is returned with the error.
func (c *refreshCoordinator) RefreshBuyer(ctx context.Context, buyerUID, buyerEmail string) (*entity.DashboardSnapshot, error) {
	var (
		items      []*entity.WatchlistItem
		deliveries []*entity.Delivery
		counts     entity.DeliveryCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.watchlistRepo.ListByBuyer(gctx, buyerUID)

		return errors.Wrap(err, "failed to list watchlist")
	})
	g.Go(func() error {
		var err error
		deliveries, err = c.deliveryRepo.ListActiveByBuyer(gctx, buyerUID, c.pendingLimit)

		return errors.Wrap(err, "failed to list pending deliveries")
	})
	g.Go(func() error {
		var err error
		counts, err = c.deliveryRepo.CountByBuyer(gctx, buyerUID)

		return errors.Wrap(err, "failed to count deliveries")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	savedItems := make([]entity.WatchlistItem, 0, len(items))
	for _, item := range items {
		savedItems = append(savedItems, *item)
	}

	snapshot := &entity.DashboardSnapshot{
		BuyerUID:          buyerUID,
		BuyerEmail:        entity.NormalizeEmail(buyerEmail),
		SavedItems:        savedItems,
		PendingDeliveries: c.display.views(deliveries),
		Counters: entity.DashboardCounters{
			SavedItems:          len(savedItems),
			ActiveDeliveries:    counts.Active,
			CompletedDeliveries: counts.Completed,
		},
		RefreshedAt: time.Now(),
	}

	if err := c.snapshots.SaveBuyerSnapshot(ctx, snapshot); err != nil {
		return snapshot, errors.Wrap(err, "failed to store buyer snapshot")
	}

	c.log(ctx).Debug("Buyer dashboard refreshed",
		slog.String("buyerUID", buyerUID),
		slog.Int("savedItems", len(savedItems)),
		slog.Int("pendingDeliveries", len(snapshot.PendingDeliveries)),
	)

	return snapshot, nil
}

// RefreshFarmer stores the farmer's most recent deliveries. Like RefreshBuyer it returns
// the computed logistics when only the store fails.
func (c *refreshCoordinator) RefreshFarmer(ctx context.Context, farmerUID string) (*entity.FarmerLogistics, error) {
	var (
		deliveries []*entity.Delivery
		counts     entity.DeliveryCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deliveries, err = c.deliveryRepo.ListRecentByFarmer(gctx, farmerUID, c.farmerLimit)

		return errors.Wrap(err, "failed to list farmer deliveries")
	})
	g.Go(func() error {
		var err error
		counts, err = c.deliveryRepo.CountByFarmer(gctx, farmerUID)

		return errors.Wrap(err, "failed to count deliveries")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logistics := &entity.FarmerLogistics{
		FarmerUID:  farmerUID,
		Deliveries: c.display.views(deliveries),
		Counters: entity.LogisticsCounters{
			ActiveDeliveries:    counts.Active,
			CompletedDeliveries: counts.Completed,
		},
		RefreshedAt: time.Now(),
	}

	if err := c.snapshots.SaveFarmerLogistics(ctx, logistics); err != nil {
		return logistics, errors.Wrap(err, "failed to store farmer logistics")
	}

	c.log(ctx).Debug("Farmer logistics refreshed",
		slog.String("farmerUID", farmerUID),
		slog.Int("deliveries", len(logistics.Deliveries)),
	)

	return logistics, nil
}
