// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrStaleDelivery is returned when a conditional update finds the delivery at another step.
	ErrStaleDelivery = errors.New("delivery was modified concurrently")
)

// DeliveryRepository defines the interface for the delivery ledger.
type DeliveryRepository interface {
	// CreateIfAbsent inserts the delivery unless one already exists for its bid, and returns
	// the stored record. created is false when an existing record was returned.
	CreateIfAbsent(ctx context.Context, delivery *entity.Delivery) (stored *entity.Delivery, created bool, err error)

	// FindByID retrieves a delivery by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindByIDs retrieves the deliveries that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Delivery, error)

	// SaveProgress persists the milestone state of delivery only if the stored record is
	// still at fromStep. Returns ErrStaleDelivery otherwise.
	SaveProgress(ctx context.Context, delivery *entity.Delivery, fromStep int) error

	// ListActiveByBuyer returns the buyer's uncompleted deliveries, most recent first.
	ListActiveByBuyer(ctx context.Context, buyerUID string, limit int) ([]*entity.Delivery, error)

	// ListRecentByFarmer returns the farmer's deliveries, most recent first.
	ListRecentByFarmer(ctx context.Context, farmerUID string, limit int) ([]*entity.Delivery, error)

	// CountByBuyer returns active and completed totals for a buyer.
	CountByBuyer(ctx context.Context, buyerUID string) (entity.DeliveryCounts, error)

	// CountByFarmer returns active and completed totals for a farmer.
	CountByFarmer(ctx context.Context, farmerUID string) (entity.DeliveryCounts, error)
}
