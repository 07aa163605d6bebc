package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"dnotes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		size int
	}{
		{"nil config uses defaults", nil, 128},
		{"configured size", &config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "H"}}, 256},
		{"zero size falls back", &config.Config{QRCode: &config.QRCodeConfig{ErrorCorrectionLevel: "invalid"}}, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg)
			require.NotNil(t, svc)
			assert.Equal(t, tt.size, svc.(*qrcodeService).size)
		})
	}
}

func TestQRCodeService_GenerateVerificationQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	qrBytes, err := svc.GenerateVerificationQR(42, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseVerificationQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{DeliveryNoteID: 42, SignedAt: "2024-03-01T10:00:00Z", Type: verificationType})
	require.NoError(t, err)

	id, err := svc.ParseVerificationQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	tests := []struct {
		name    string
		payload QRCodeData
		errMsg  string
	}{
		{"wrong type", QRCodeData{DeliveryNoteID: 42, SignedAt: "2024-03-01T10:00:00Z", Type: "subscription"}, "invalid QR code type"},
		{"missing id", QRCodeData{SignedAt: "2024-03-01T10:00:00Z", Type: verificationType}, "missing delivery note id"},
		{"bad time", QRCodeData{DeliveryNoteID: 42, SignedAt: "yesterday", Type: verificationType}, "failed to parse signature time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			_, err = svc.ParseVerificationQR(string(raw))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err = svc.ParseVerificationQR("invalid json")
	assert.ErrorContains(t, err, "failed to unmarshal QR code data")
}
