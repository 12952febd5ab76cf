package postgres

import (
	"context"

	"farmlink/internal/domain/entity"
	"farmlink/internal/domain/repository"
	"farmlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// watchlistRepository implements the repository.WatchlistRepository interface.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository is the constructor for watchlistRepository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &watchlistRepository{
		db: db,
	}
}

// Add saves the item. A duplicate keeps the original AddedAt.
func (repo *watchlistRepository) Add(ctx context.Context, item *entity.WatchlistItem) error {
	itemM := &model.WatchlistItemModel{
		BuyerUID:  item.BuyerUID,
		ProductID: item.ProductID,
		AddedAt:   item.AddedAt,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return errors.Wrap(err, "failed to add watchlist item")
	}

	return nil
}

// Remove deletes the item if present.
func (repo *watchlistRepository) Remove(ctx context.Context, buyerUID, productID string) error {
	if err := repo.db.WithContext(ctx).
		Where("buyer_uid = ? AND product_id = ?", buyerUID, productID).
		Delete(&model.WatchlistItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove watchlist item")
	}

	return nil
}

// ListByBuyer returns the buyer's items, most recent first.
func (repo *watchlistRepository) ListByBuyer(ctx context.Context, buyerUID string) ([]*entity.WatchlistItem, error) {
	var itemModels []*model.WatchlistItemModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_uid = ?", buyerUID).
		Order("added_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist items")
	}

	items := make([]*entity.WatchlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.WatchlistItem{
			BuyerUID:  itemM.BuyerUID,
			ProductID: itemM.ProductID,
			AddedAt:   itemM.AddedAt,
		})
	}

	return items, nil
}
