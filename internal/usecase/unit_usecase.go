package usecase

import (
	"context"
	"time"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"

	"github.com/google/uuid"
)

// UnitInput carries the attributes of a new unit
type UnitInput struct {
	PropertyName string
	UnitNumber   string
	Bedrooms     int
	Bathrooms    float64
	SquareFeet   int
	Price        int
	Amenities    []string
	Location     entity.Location
	Images       []string
	Description  string
	Status       entity.UnitStatus // Defaults to available.
	DateListed   *time.Time        // Defaults to now.
}

// UnitPatch carries a partial update; nil fields are left untouched
type UnitPatch struct {
	PropertyName *string
	UnitNumber   *string
	Bedrooms     *int
	Bathrooms    *float64
	SquareFeet   *int
	Price        *int
	Amenities    *[]string
	Location     *entity.Location
	Images       *[]string
	Description  *string
	Status       *entity.UnitStatus
}

// IsEmpty reports whether the patch changes nothing
func (p *UnitPatch) IsEmpty() bool {
	return p == nil || (p.PropertyName == nil && p.UnitNumber == nil && p.Bedrooms == nil &&
		p.Bathrooms == nil && p.SquareFeet == nil && p.Price == nil && p.Amenities == nil &&
		p.Location == nil && p.Images == nil && p.Description == nil && p.Status == nil)
}

// UnitPage is one page of a unit listing
type UnitPage struct {
	Units    []*entity.Unit
	Total    int64
	Page     int
	PageSize int
}

// UnitUsecase defines the unit management use cases
type UnitUsecase interface {
	// CreateUnit stores a new unit, scores it and notifies observers
	CreateUnit(ctx context.Context, input *UnitInput) (*entity.Unit, error)

	// GetUnit retrieves a unit by ID
	GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// ListUnits returns units matching filter, highest score first
	ListUnits(ctx context.Context, filter repository.UnitFilter) (*UnitPage, error)

	// UpdateUnit applies a partial update, rescores and notifies observers
	UpdateUnit(ctx context.Context, id uuid.UUID, patch *UnitPatch) (*entity.Unit, error)

	// DeleteUnit removes a unit and notifies observers
	DeleteUnit(ctx context.Context, id uuid.UUID) error

	// GenerateListingQR renders a QR code linking to the unit listing
	GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
