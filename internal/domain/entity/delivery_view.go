package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDisplayLayout renders timestamps when no layout is configured.
const DefaultDisplayLayout = "2006-01-02 15:04"

// DeliveryEventView is a milestone as shown to buyers and farmers.
type DeliveryEventView struct {
	Label       string      `json:"label"`
	Detail      string      `json:"detail"`
	Status      EventStatus `json:"status"`
	Timestamp   *time.Time  `json:"timestamp"`
	DisplayTime string      `json:"display_time"`
	Active      bool        `json:"active"`
}

// DeliveryView is the display projection of a Delivery.
type DeliveryView struct {
	ID          uuid.UUID           `json:"id"`
	BidID       string              `json:"bid_id"`
	ProductID   string              `json:"product_id"`
	Farmer      Party               `json:"farmer"`
	Buyer       Party               `json:"buyer"`
	Status      string              `json:"status"`
	CurrentStep int                 `json:"current_step"`
	ActiveStep  int                 `json:"active_step"`
	Completed   bool                `json:"completed"`
	Events      []DeliveryEventView `json:"events"`
	Terms       Terms               `json:"terms"`
	Total       decimal.Decimal     `json:"total"`
	ETA         string              `json:"eta"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DisplayTime string              `json:"display_time"` // UpdatedAt in the display location
}

// ActiveStep returns the first milestone that is not completed, or the last one
// when every milestone is completed.
func ActiveStep(events []DeliveryEvent) int {
	for i, event := range events {
		if event.Status != EventCompleted {
			return i
		}
	}

	if len(events) == 0 {
		return 0
	}

	return len(events) - 1
}

// FormatForDisplay projects a delivery into loc. It does not modify d and is
// used for both buyer and farmer views.
func FormatForDisplay(d *Delivery, loc *time.Location, layout string) DeliveryView {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultDisplayLayout
	}

	active := ActiveStep(d.Events)
	events := make([]DeliveryEventView, len(d.Events))
	for i, event := range d.Events {
		view := DeliveryEventView{
			Label:  event.Label,
			Detail: event.Detail,
			Status: event.Status,
			Active: i == active,
		}
		if view.Active && event.Status == EventPending {
			view.Status = EventInProgress
		}
		if event.Timestamp != nil {
			ts := event.Timestamp.In(loc)
			view.Timestamp = &ts
			view.DisplayTime = ts.Format(layout)
		}
		events[i] = view
	}

	updatedAt := d.UpdatedAt.In(loc)

	return DeliveryView{
		ID:          d.ID,
		BidID:       d.BidID,
		ProductID:   d.ProductID,
		Farmer:      d.Farmer,
		Buyer:       d.Buyer,
		Status:      d.Status,
		CurrentStep: d.CurrentStep,
		ActiveStep:  active,
		Completed:   d.IsCompleted(),
		Events:      events,
		Terms:       d.Terms,
		Total:       d.Terms.Total(),
		ETA:         d.ETA,
		CreatedAt:   d.CreatedAt.In(loc),
		UpdatedAt:   updatedAt,
		DisplayTime: updatedAt.Format(layout),
	}
}
