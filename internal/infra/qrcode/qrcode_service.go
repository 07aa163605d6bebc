package qrcode

import (
	"encoding/json"
	"fmt"
	"time"

	"dnotes/config"
	"dnotes/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const verificationType = "delivery_note_signature"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	DeliveryNoteID uint64 `json:"delivery_note_id"`
	SignedAt       string `json:"signed_at"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 128
	level := "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVerificationQR generates the PNG QR printed on a signed delivery note
func (s *qrcodeService) GenerateVerificationQR(deliveryNoteID uint64, signedAt time.Time) ([]byte, error) {
	data := QRCodeData{
		DeliveryNoteID: deliveryNoteID,
		SignedAt:       signedAt.UTC().Format(time.RFC3339),
		Type:           verificationType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVerificationQR parses scanned QR data and returns the delivery note ID
func (s *qrcodeService) ParseVerificationQR(payload string) (uint64, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != verificationType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.DeliveryNoteID == 0 {
		return 0, fmt.Errorf("missing delivery note id")
	}

	if _, err := time.Parse(time.RFC3339, data.SignedAt); err != nil {
		return 0, fmt.Errorf("failed to parse signature time: %w", err)
	}

	return data.DeliveryNoteID, nil
}
