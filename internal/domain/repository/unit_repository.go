// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"strings"

	"leasing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// ErrUnitNotFound is returned when no unit exists for an id.
var ErrUnitNotFound = errors.New("unit not found")

// UnitRepository is the unit store. Each call is atomic for a single key;
// serializing read-modify-write sequences is the caller's job.
type UnitRepository interface {
	// Get returns a private copy of the unit with id.
	Get(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// Put fully replaces (or inserts) unit and returns the stored copy.
	Put(ctx context.Context, unit *entity.Unit) (*entity.Unit, error)

	// List returns units matching filter.
	List(ctx context.Context, filter UnitFilter) ([]*entity.Unit, error)

	// Count returns how many units match filter, ignoring Offset and Limit.
	Count(ctx context.Context, filter UnitFilter) (int64, error)

	// Delete removes the unit with id.
	Delete(ctx context.Context, id uuid.UUID) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// GeoRadius restricts results to units within RadiusKm of Center.
type GeoRadius struct {
	Center   orb.Point
	RadiusKm float64
}

// Contains reports whether point lies inside the radius.
func (g GeoRadius) Contains(point orb.Point) bool {
	return geo.Distance(g.Center, point) <= g.RadiusKm*1000
}

// Bound returns the bounding box of the radius, usable as a coarse index filter.
func (g GeoRadius) Bound() orb.Bound {
	return geo.NewBoundAroundPoint(g.Center, g.RadiusKm*1000)
}

// UnitFilter narrows List and Count. Zero values mean "no restriction".
type UnitFilter struct {
	Status       *entity.UnitStatus
	Bedrooms     *int
	PriceMin     *int
	PriceMax     *int
	City         string
	Near         *GeoRadius
	Offset       int
	Limit        int
	OrderByScore bool // Highest lead score first; otherwise oldest listing first.
}

// Matches reports whether unit passes every attribute predicate of f.
// Offset, Limit and ordering are not considered.
func (f UnitFilter) Matches(unit *entity.Unit) bool {
	if f.Status != nil && unit.Status != *f.Status {
		return false
	}
	if f.Bedrooms != nil && unit.Bedrooms != *f.Bedrooms {
		return false
	}
	if f.PriceMin != nil && unit.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && unit.Price > *f.PriceMax {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(unit.Location.City), strings.ToLower(f.City)) {
		return false
	}
	if f.Near != nil && (!unit.Location.HasCoordinates() || !f.Near.Contains(unit.Location.Point())) {
		return false
	}

	return true
}

// Unpaged returns a copy of f without Offset and Limit.
func (f UnitFilter) Unpaged() UnitFilter {
	f.Offset = 0
	f.Limit = 0

	return f
}
