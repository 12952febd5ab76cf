package repository

import (
	"context"

	"farmlink/internal/domain/entity"
)

// WatchlistRepository defines the interface for buyer saved items.
type WatchlistRepository interface {
	// Add saves the item; saving an existing item is a no-op.
	Add(ctx context.Context, item *entity.WatchlistItem) error

	// Remove deletes the item if present.
	Remove(ctx context.Context, buyerUID, productID string) error

	// ListByBuyer returns the buyer's items, most recent first.
	ListByBuyer(ctx context.Context, buyerUID string) ([]*entity.WatchlistItem, error)
}
