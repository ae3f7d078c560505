package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://leasing.example.com/"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ListingURL(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL).(*qrcodeService)
	unitID := uuid.New()

	assert.Equal(t, "https://leasing.example.com/units/"+unitID.String(), service.listingURL(unitID))
}

func TestQRCodeService_ParseListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	unitID := uuid.New()

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{"Valid listing URL", "https://leasing.example.com/units/" + unitID.String(), unitID, false},
		{"Trailing slash", "https://leasing.example.com/units/" + unitID.String() + "/", unitID, false},
		{"Wrong path", "https://leasing.example.com/owners/" + unitID.String(), uuid.Nil, true},
		{"Invalid id", "https://leasing.example.com/units/not-a-uuid", uuid.Nil, true},
		{"Garbage", "%%%", uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseListingQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
