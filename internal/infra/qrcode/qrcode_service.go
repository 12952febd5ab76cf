package qrcode

import (
	"strings"

	"farmlink/config"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the tracking label service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, "M"
	if cfg.QRCode != nil {
		size, level = cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel
	}

	baseURL := ""
	if cfg.Dispatch != nil {
		baseURL = cfg.Dispatch.PublicBaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// TrackingURL returns the public tracking page of a delivery
func (s *qrcodeService) TrackingURL(deliveryID uuid.UUID) string {
	return s.baseURL + "/orders/" + deliveryID.String()
}

// GenerateTrackingQR renders the tracking URL as a PNG
func (s *qrcodeService) GenerateTrackingQR(deliveryID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.TrackingURL(deliveryID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
