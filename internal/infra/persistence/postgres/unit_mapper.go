package postgres

import (
	"slices"
	"time"

	"leasing/internal/domain/entity"
	"leasing/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func fromUnitDomain(unit *entity.Unit) *model.UnitModel {
	return &model.UnitModel{
		ID:               unit.ID,
		PropertyName:     unit.PropertyName,
		UnitNumber:       unit.UnitNumber,
		Bedrooms:         unit.Bedrooms,
		Bathrooms:        unit.Bathrooms,
		SquareFeet:       unit.SquareFeet,
		Price:            unit.Price,
		Amenities:        nonNilSlice(unit.Amenities),
		Images:           nonNilSlice(unit.Images),
		Description:      unit.Description,
		Address:          unit.Location.Address,
		City:             unit.Location.City,
		State:            unit.Location.State,
		Zip:              unit.Location.Zip,
		Latitude:         unit.Location.Latitude,
		Longitude:        unit.Location.Longitude,
		Status:           string(unit.Status),
		DateListed:       unit.DateListed.UTC(),
		DateLeased:       utcOrNil(unit.DateLeased),
		LeadScore:        unit.LeadScore,
		ScoreBreakdown:   datatypes.NewJSONType(unit.ScoreBreakdown),
		ScoreFingerprint: unit.ScoreFingerprint,
		ScoredAt:         utcOrNil(unit.ScoredAt),
		Version:          unit.Version,
		CreatedAt:        unit.CreatedAt.UTC(),
		UpdatedAt:        unit.UpdatedAt.UTC(),
	}
}

func toUnitDomain(m *model.UnitModel) *entity.Unit {
	return &entity.Unit{
		ID:           m.ID,
		PropertyName: m.PropertyName,
		UnitNumber:   m.UnitNumber,
		Bedrooms:     m.Bedrooms,
		Bathrooms:    m.Bathrooms,
		SquareFeet:   m.SquareFeet,
		Price:        m.Price,
		Amenities:    slices.Clone([]string(m.Amenities)),
		Images:       slices.Clone([]string(m.Images)),
		Description:  m.Description,
		Location: entity.Location{
			Address:   m.Address,
			City:      m.City,
			State:     m.State,
			Zip:       m.Zip,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		Status:           entity.UnitStatus(m.Status),
		DateListed:       m.DateListed.UTC(),
		DateLeased:       utcOrNil(m.DateLeased),
		LeadScore:        m.LeadScore,
		ScoreBreakdown:   m.ScoreBreakdown.Data(),
		ScoreFingerprint: m.ScoreFingerprint,
		ScoredAt:         utcOrNil(m.ScoredAt),
		Version:          m.Version,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

// nonNilSlice keeps NOT NULL jsonb columns as [] rather than null.
func nonNilSlice(values []string) []string {
	if values == nil {
		return []string{}
	}

	return slices.Clone(values)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}
