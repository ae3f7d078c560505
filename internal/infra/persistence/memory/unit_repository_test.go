package memory

import (
	"context"
	"testing"
	"time"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnit(score float64, mutate func(*entity.Unit)) *entity.Unit {
	unit := &entity.Unit{
		ID:         uuid.New(),
		Bedrooms:   2,
		Price:      1500,
		Status:     entity.UnitStatusAvailable,
		Location:   entity.Location{City: "Louisville", Zip: "40202", Latitude: 38.2527, Longitude: -85.7585},
		DateListed: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		LeadScore:  score,
		Amenities:  []string{"parking"},
	}
	if mutate != nil {
		mutate(unit)
	}

	return unit
}

func TestUnitRepository_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitRepository()
	unit := newUnit(70, nil)

	stored, err := repo.Put(ctx, unit)
	require.NoError(t, err)

	unit.Amenities[0] = "mutated"
	stored.Amenities[0] = "mutated"

	got, err := repo.Get(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"parking"}, got.Amenities, "store must not share slices with callers")
}

func TestUnitRepository_GetMissing(t *testing.T) {
	repo := NewUnitRepository()

	_, err := repo.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrUnitNotFound)
}

func TestUnitRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitRepository()
	unit := newUnit(50, nil)
	_, err := repo.Put(ctx, unit)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, unit.ID))
	assert.ErrorIs(t, repo.Delete(ctx, unit.ID), repository.ErrUnitNotFound)

	units, err := repo.List(ctx, repository.UnitFilter{})
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestUnitRepository_ListFiltersAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewUnitRepository()

	leased := entity.UnitStatusLeased
	available := entity.UnitStatusAvailable
	three := 3
	minPrice, maxPrice := 1000, 2000

	units := []*entity.Unit{
		newUnit(90, nil),
		newUnit(80, func(u *entity.Unit) { u.Bedrooms = 3 }),
		newUnit(70, func(u *entity.Unit) { u.Status = entity.UnitStatusLeased }),
		newUnit(60, func(u *entity.Unit) { u.Price = 2500 }),
		newUnit(50, func(u *entity.Unit) {
			u.Location = entity.Location{City: "Lexington", Latitude: 38.0406, Longitude: -84.5037}
		}),
	}
	for _, unit := range units {
		_, err := repo.Put(ctx, unit)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter repository.UnitFilter
		want   []uuid.UUID
	}{
		{"Ordered by score", repository.UnitFilter{OrderByScore: true}, []uuid.UUID{units[0].ID, units[1].ID, units[2].ID, units[3].ID, units[4].ID}},
		{"Status", repository.UnitFilter{Status: &leased}, []uuid.UUID{units[2].ID}},
		{"Bedrooms", repository.UnitFilter{Bedrooms: &three}, []uuid.UUID{units[1].ID}},
		{"Price range", repository.UnitFilter{Status: &available, PriceMin: &minPrice, PriceMax: &maxPrice, OrderByScore: true}, []uuid.UUID{units[0].ID, units[1].ID, units[4].ID}},
		{"City substring", repository.UnitFilter{City: "lex"}, []uuid.UUID{units[4].ID}},
		{"Paging", repository.UnitFilter{OrderByScore: true, Offset: 1, Limit: 2}, []uuid.UUID{units[1].ID, units[2].ID}},
		{"Offset past end", repository.UnitFilter{Offset: 10}, []uuid.UUID{}},
		{
			"Within radius",
			repository.UnitFilter{
				Near:         &repository.GeoRadius{Center: orb.Point{-84.5, 38.04}, RadiusKm: 5},
				OrderByScore: true,
			},
			[]uuid.UUID{units[4].ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(got))
			for _, unit := range got {
				ids = append(ids, unit.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	count, err := repo.Count(ctx, repository.UnitFilter{OrderByScore: true, Offset: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestUnitRepository_PingHonorsContext(t *testing.T) {
	repo := NewUnitRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, repo.Ping(ctx))
	assert.NoError(t, repo.Ping(context.Background()))
}
