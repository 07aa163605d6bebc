package service

import "time"

// QRCodeService generates and parses the verification QR printed on signed delivery notes.
type QRCodeService interface {
	// GenerateVerificationQR returns a PNG encoding the note id and signature time.
	GenerateVerificationQR(deliveryNoteID uint64, signedAt time.Time) ([]byte, error)

	// ParseVerificationQR decodes the payload of a scanned QR and returns the note id.
	ParseVerificationQR(payload string) (uint64, error)
}
