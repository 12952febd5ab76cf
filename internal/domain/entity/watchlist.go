package entity

import "time"

// WatchlistItem is a product saved by a buyer.
type WatchlistItem struct {
	BuyerUID  string    `json:"buyer_uid"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}
