package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"farmlink/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	service := newQRCodeService(256, "M", "https://farm.example.com/")
	id := uuid.MustParse("0b6c5f36-7a4e-4d7e-9a43-0fdb0f3f3a11")

	assert.Equal(t, "https://farm.example.com/orders/0b6c5f36-7a4e-4d7e-9a43-0fdb0f3f3a11", service.TrackingURL(id))
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newQRCodeService(tt.size, "M", "https://farm.example.com")

			qrBytes, err := service.GenerateTrackingQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GenerateTrackingQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
	assert.Equal(t, "/orders/"+uuid.Nil.String(), service.TrackingURL(uuid.Nil))
}
