package usecase

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryInput represents an accepted bid turned into an order
type CreateDeliveryInput struct {
	BidID      string
	ProductID  string
	Farmer     entity.Party
	Buyer      entity.Party
	Terms      entity.Terms
	Milestones []string // optional custom milestone labels
}

// DeliveryUsecase defines the interface for the delivery ledger
type DeliveryUsecase interface {
	// CreateDelivery creates the delivery of an accepted bid. Calling it again for the same
	// bid returns the existing delivery unchanged.
	CreateDelivery(ctx context.Context, caller entity.Caller, input *CreateDeliveryInput) (*entity.DeliveryView, error)

	// GetDelivery returns a delivery visible to its farmer, its buyer or an admin
	GetDelivery(ctx context.Context, caller entity.Caller, id uuid.UUID) (*entity.DeliveryView, error)

	// AdvanceMilestone moves a delivery to targetStep, which must directly follow the current step
	AdvanceMilestone(ctx context.Context, caller entity.Caller, id uuid.UUID, targetStep int) (*entity.DeliveryView, error)

	// TrackingQR renders a printable QR code of the public tracking page
	TrackingQR(ctx context.Context, caller entity.Caller, id uuid.UUID) ([]byte, error)
}
