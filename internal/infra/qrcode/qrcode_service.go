package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"leasing/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const listingPathSegment = "units"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes encode
// baseURL/units/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateListingQR generates a PNG QR code linking to the unit's listing page
func (s *qrcodeService) GenerateListingQR(unitID uuid.UUID) ([]byte, error) {
	content := s.listingURL(unitID)

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseListingQR extracts the unit ID from a scanned listing URL
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code URL: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != listingPathSegment {
		return uuid.Nil, fmt.Errorf("invalid listing QR code path: %s", parsed.Path)
	}

	unitID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse unit ID: %w", err)
	}

	return unitID, nil
}

func (s *qrcodeService) listingURL(unitID uuid.UUID) string {
	return s.baseURL + "/" + listingPathSegment + "/" + unitID.String()
}
