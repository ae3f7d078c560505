package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for listing QR code generation and parsing
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the unit's listing page
	GenerateListingQR(unitID uuid.UUID) ([]byte, error)

	// ParseListingQR extracts the unit ID from scanned QR code content
	ParseListingQR(qrData string) (uuid.UUID, error)
}
