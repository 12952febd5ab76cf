package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for delivery tracking labels
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the public tracking page of a delivery
	GenerateTrackingQR(deliveryID uuid.UUID) ([]byte, error)

	// TrackingURL returns the public tracking page of a delivery
	TrackingURL(deliveryID uuid.UUID) string
}
