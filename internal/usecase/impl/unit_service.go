package impl

import (
	"context"
	"slices"
	"strings"
	"time"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/service"
	"leasing/internal/errors"
	"leasing/internal/usecase"

	"github.com/google/uuid"
)

type unitService struct {
	coordinator *Coordinator
	repo        repository.UnitRepository
	qrService   service.QRCodeService
}

// NewUnitService creates a new unit service instance
func NewUnitService(
	coordinator *Coordinator,
	repo repository.UnitRepository,
	qrService service.QRCodeService,
) usecase.UnitUsecase {
	return &unitService{
		coordinator: coordinator,
		repo:        repo,
		qrService:   qrService,
	}
}

// CreateUnit stores a new unit, scores it and notifies observers
func (s *unitService) CreateUnit(ctx context.Context, input *usecase.UnitInput) (*entity.Unit, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit is required")
	}

	status := input.Status
	if status == "" {
		status = entity.UnitStatusAvailable
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	now := s.coordinator.now()
	unit := &entity.Unit{
		ID:           uuid.New(),
		PropertyName: strings.TrimSpace(input.PropertyName),
		UnitNumber:   strings.TrimSpace(input.UnitNumber),
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
		Price:        input.Price,
		Amenities:    entity.NormalizeAmenities(input.Amenities),
		Location:     input.Location,
		Images:       slices.Clone(input.Images),
		Description:  input.Description,
		Status:       entity.UnitStatusAvailable,
		DateListed:   now,
	}
	if input.DateListed != nil {
		unit.DateListed = *input.DateListed
	}
	unit.SetStatus(status, now)

	created, err := s.coordinator.Create(ctx, unit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create unit")
	}

	return created, nil
}

// GetUnit retrieves a unit by ID
func (s *unitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "get unit")
	}

	return unit, nil
}

// ListUnits returns units matching filter, highest score first
func (s *unitService) ListUnits(ctx context.Context, filter repository.UnitFilter) (*usecase.UnitPage, error) {
	filter.OrderByScore = true

	total, err := s.repo.Count(ctx, filter.Unpaged())
	if err != nil {
		return nil, mapStoreError(err, "count units")
	}

	units, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, mapStoreError(err, "list units")
	}

	page := &usecase.UnitPage{
		Units:    units,
		Total:    total,
		Page:     1,
		PageSize: filter.Limit,
	}
	if filter.Limit > 0 {
		page.Page = filter.Offset/filter.Limit + 1
	}

	return page, nil
}

// UpdateUnit applies a partial update, rescores and notifies observers
func (s *unitService) UpdateUnit(ctx context.Context, id uuid.UUID, patch *usecase.UnitPatch) (*entity.Unit, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}

	updated, err := s.coordinator.Mutate(ctx, id, func(unit *entity.Unit, now time.Time) error {
		applyPatch(unit, patch, now)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update unit")
	}

	return updated, nil
}

// DeleteUnit removes a unit and notifies observers
func (s *unitService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	if err := s.coordinator.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete unit")
	}

	return nil
}

// GenerateListingQR renders a QR code linking to the unit listing
func (s *unitService) GenerateListingQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, mapStoreError(err, "get unit")
	}

	png, err := s.qrService.GenerateListingQR(id)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return png, nil
}

func applyPatch(unit *entity.Unit, patch *usecase.UnitPatch, now time.Time) {
	if patch.PropertyName != nil {
		unit.PropertyName = strings.TrimSpace(*patch.PropertyName)
	}
	if patch.UnitNumber != nil {
		unit.UnitNumber = strings.TrimSpace(*patch.UnitNumber)
	}
	if patch.Bedrooms != nil {
		unit.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		unit.Bathrooms = *patch.Bathrooms
	}
	if patch.SquareFeet != nil {
		unit.SquareFeet = *patch.SquareFeet
	}
	if patch.Price != nil {
		unit.Price = *patch.Price
	}
	if patch.Amenities != nil {
		unit.Amenities = entity.NormalizeAmenities(*patch.Amenities)
	}
	if patch.Location != nil {
		unit.Location = *patch.Location
	}
	if patch.Images != nil {
		unit.Images = slices.Clone(*patch.Images)
	}
	if patch.Description != nil {
		unit.Description = *patch.Description
	}
	if patch.Status != nil {
		unit.SetStatus(*patch.Status, now)
	}
}
