// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// UnitStatus is the leasing state of a unit.
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusPending   UnitStatus = "pending"
	UnitStatusLeased    UnitStatus = "leased"
)

// IsValid reports whether s is one of the known statuses.
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusPending, UnitStatusLeased:
		return true
	default:
		return false
	}
}

// ParseUnitStatus converts a raw string into a UnitStatus.
func ParseUnitStatus(raw string) (UnitStatus, bool) {
	status := UnitStatus(strings.ToLower(strings.TrimSpace(raw)))

	return status, status.IsValid()
}

// Location is the postal address and coordinates of a unit.
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the coordinates in orb order (lng, lat).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// HasCoordinates reports whether the location carries a usable position.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// Unit is a leasable housing unit together with its cached priority score.
type Unit struct {
	ID           uuid.UUID `json:"id"`            // Stable identifier, never changes after creation.
	PropertyName string    `json:"property_name"` // Name of the building or community.
	UnitNumber   string    `json:"unit_number"`   // Unit label inside the property.
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    float64   `json:"bathrooms"`
	SquareFeet   int       `json:"square_feet"`
	Price        int       `json:"price"` // Monthly rent.
	Amenities    []string  `json:"amenities"`
	Location     Location  `json:"location"`
	Images       []string  `json:"images"`
	Description  string    `json:"description"`

	Status     UnitStatus `json:"status"`
	DateListed time.Time  `json:"date_listed"`
	DateLeased *time.Time `json:"date_leased,omitempty"` // Set only while Status is leased.

	LeadScore        float64            `json:"lead_score"`
	ScoreBreakdown   map[string]float64 `json:"score_breakdown"`
	ScoreFingerprint string             `json:"score_fingerprint,omitempty"`
	ScoredAt         *time.Time         `json:"scored_at,omitempty"`

	Version   uint64    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers never share slices or maps with a stored record.
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}

	cloned := *u
	cloned.Amenities = slices.Clone(u.Amenities)
	cloned.Images = slices.Clone(u.Images)

	if u.ScoreBreakdown != nil {
		cloned.ScoreBreakdown = make(map[string]float64, len(u.ScoreBreakdown))
		for k, v := range u.ScoreBreakdown {
			cloned.ScoreBreakdown[k] = v
		}
	}

	if u.DateLeased != nil {
		leased := *u.DateLeased
		cloned.DateLeased = &leased
	}

	if u.ScoredAt != nil {
		scored := *u.ScoredAt
		cloned.ScoredAt = &scored
	}

	return &cloned
}

// SetStatus moves the unit to status and keeps DateLeased consistent:
// entering leased stamps it once, leaving leased clears it.
func (u *Unit) SetStatus(status UnitStatus, now time.Time) {
	if status == UnitStatusLeased {
		if u.Status != UnitStatusLeased || u.DateLeased == nil {
			leased := now
			u.DateLeased = &leased
		}
	} else {
		u.DateLeased = nil
	}

	u.Status = status
}

// ListingAgeDays is the number of whole days between DateListed and asOf.
// A listing date in the future counts as zero.
func (u *Unit) ListingAgeDays(asOf time.Time) int {
	if u.DateListed.IsZero() || asOf.Before(u.DateListed) {
		return 0
	}

	return int(asOf.Sub(u.DateListed) / (24 * time.Hour))
}

// NormalizeAmenities lower-cases, trims, dedups and sorts amenity names.
func NormalizeAmenities(amenities []string) []string {
	normalized := make([]string, 0, len(amenities))
	for _, amenity := range amenities {
		name := NormalizeAmenity(amenity)
		if name == "" {
			continue
		}
		normalized = append(normalized, name)
	}

	slices.Sort(normalized)

	return slices.Compact(normalized)
}

// NormalizeAmenity folds case and separators so "In Unit Laundry" and
// "in_unit_laundry" compare equal.
func NormalizeAmenity(amenity string) string {
	fields := strings.FieldsFunc(strings.ToLower(amenity), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})

	return strings.Join(fields, "_")
}
