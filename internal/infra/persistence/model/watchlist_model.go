package model

import (
	"time"
)

// WatchlistItemModel is the GORM-specific struct for the 'watchlist_items' table.
type WatchlistItemModel struct {
	BuyerUID  string    `gorm:"type:varchar(128);primaryKey"`
	ProductID string    `gorm:"type:varchar(128);primaryKey"`
	AddedAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WatchlistItemModel) TableName() string {
	return "watchlist_items"
}

// All lists every model managed by the migrator.
func All() []any {
	return []any{
		&DeliveryModel{},
		&NotificationChannelModel{},
		&WatchlistItemModel{},
	}
}
