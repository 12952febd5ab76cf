package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/usecase"

	"go.uber.org/fx"
)

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	coordinator   usecase.RefreshCoordinator
	logger        *slog.Logger
}

// WatchlistServiceParams holds dependencies for WatchlistService, injected by Fx.
type WatchlistServiceParams struct {
	fx.In

	WatchlistRepo repository.WatchlistRepository
	Coordinator   usecase.RefreshCoordinator
	Logger        *slog.Logger
}

// NewWatchlistService is the constructor for watchlistService.
func NewWatchlistService(params WatchlistServiceParams) usecase.WatchlistUsecase {
	return &watchlistService{
		watchlistRepo: params.WatchlistRepo,
		coordinator:   params.Coordinator,
		logger:        params.Logger,
	}
}

func (srv *watchlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *watchlistService) AddItem(ctx context.Context, caller entity.Caller, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("productId is required")
	}

	err := srv.watchlistRepo.Add(ctx, &entity.WatchlistItem{
		BuyerUID:  caller.UID,
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	if err != nil {
		return unavailable(ctx, srv.log(ctx), err, "failed to save watchlist item")
	}

	srv.coordinator.ScheduleRefresh(ctx, caller.UID, caller.Email)

	return nil
}

func (srv *watchlistService) RemoveItem(ctx context.Context, caller entity.Caller, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("productId is required")
	}

	if err := srv.watchlistRepo.Remove(ctx, caller.UID, productID); err != nil {
		return unavailable(ctx, srv.log(ctx), err, "failed to remove watchlist item")
	}

	srv.coordinator.ScheduleRefresh(ctx, caller.UID, caller.Email)

	return nil
}
