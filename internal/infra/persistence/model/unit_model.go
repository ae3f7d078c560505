// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UnitModel mirrors the 'units' table. Timestamps are owned by the domain,
// so GORM's automatic time tracking is disabled.
type UnitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyName string    `gorm:"type:varchar(200);not null"`
	UnitNumber   string    `gorm:"type:varchar(50);not null"`
	Bedrooms     int       `gorm:"not null;index:idx_units_bedrooms"`
	Bathrooms    float64   `gorm:"type:decimal(4,1);not null"`
	SquareFeet   int       `gorm:"not null"`
	Price        int       `gorm:"not null;index:idx_units_price"`

	Amenities   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Description string                      `gorm:"type:text;not null"`

	Address   string  `gorm:"type:varchar(200);not null"`
	City      string  `gorm:"type:varchar(100);not null;index:idx_units_city"`
	State     string  `gorm:"type:varchar(50);not null"`
	Zip       string  `gorm:"type:varchar(10);not null"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null;default:0;index:idx_units_position,priority:1"`
	Longitude float64 `gorm:"type:decimal(11,8);not null;default:0;index:idx_units_position,priority:2"`

	Status     string     `gorm:"type:varchar(20);not null;index:idx_units_status_score,priority:1"`
	DateListed time.Time  `gorm:"not null;index:idx_units_date_listed"`
	DateLeased *time.Time `gorm:"index:idx_units_date_leased"`

	LeadScore        float64                                 `gorm:"not null;default:0;index:idx_units_status_score,priority:2,sort:desc"`
	ScoreBreakdown   datatypes.JSONType[map[string]float64] `gorm:"type:jsonb"`
	ScoreFingerprint string                                  `gorm:"type:varchar(32)"`
	ScoredAt         *time.Time

	Version   uint64    `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}
