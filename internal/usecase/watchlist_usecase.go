package usecase

import (
	"context"

	"farmlink/internal/domain/entity"
)

// WatchlistUsecase defines the interface for buyer saved items
type WatchlistUsecase interface {
	// AddItem saves a product for the caller and schedules a dashboard refresh
	AddItem(ctx context.Context, caller entity.Caller, productID string) error

	// RemoveItem removes a saved product and schedules a dashboard refresh
	RemoveItem(ctx context.Context, caller entity.Caller, productID string) error
}
