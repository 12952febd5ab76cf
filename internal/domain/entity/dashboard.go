package entity

import "time"

// DashboardCounters are the summary numbers of a buyer dashboard.
type DashboardCounters struct {
	SavedItems          int `json:"saved_items"`
	ActiveDeliveries    int `json:"active_deliveries"`
	CompletedDeliveries int `json:"completed_deliveries"`
}

// DashboardSnapshot is the precomputed buyer dashboard. It is always replaced whole.
type DashboardSnapshot struct {
	BuyerUID          string            `json:"buyer_uid"`
	BuyerEmail        string            `json:"buyer_email"`
	SavedItems        []WatchlistItem   `json:"saved_items"`
	PendingDeliveries []DeliveryView    `json:"pending_deliveries"` // most recent first
	Counters          DashboardCounters `json:"counters"`
	RefreshedAt       time.Time         `json:"refreshed_at"`
}

// LogisticsCounters are the summary numbers of a farmer logistics view.
type LogisticsCounters struct {
	ActiveDeliveries    int `json:"active_deliveries"`
	CompletedDeliveries int `json:"completed_deliveries"`
}

// FarmerLogistics is the precomputed list of a farmer's recent deliveries.
type FarmerLogistics struct {
	FarmerUID   string            `json:"farmer_uid"`
	Deliveries  []DeliveryView    `json:"deliveries"` // most recent first
	Counters    LogisticsCounters `json:"counters"`
	RefreshedAt time.Time         `json:"refreshed_at"`
	Live        bool              `json:"live"` // built from live data because no snapshot existed
}

// DeliveryCounts are per-party totals read from the ledger.
type DeliveryCounts struct {
	Active    int
	Completed int
}
