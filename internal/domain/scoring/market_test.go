package scoring

import (
	"slices"
	"testing"
	"time"

	"leasing/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildMarketContext(t *testing.T) {
	target := newScoredUnit(nil)

	sameBedrooms := newScoredUnit(func(u *entity.Unit) {
		u.Price = 1200
		u.SquareFeet = 600
		u.Location.City = "Lexington"
	})
	sameCity := newScoredUnit(func(u *entity.Unit) {
		u.Price = 1800
		u.SquareFeet = 900
		u.Bedrooms = 4
		u.Location.City = "LOUISVILLE"
	})
	unrelated := newScoredUnit(func(u *entity.Unit) {
		u.Price = 9999
		u.Bedrooms = 5
		u.Location.City = "Frankfort"
	})
	leased := newScoredUnit(func(u *entity.Unit) {
		u.Price = 9999
		u.Status = entity.UnitStatusLeased
	})
	self := target.Clone()
	self.Price = 9999

	market := BuildMarketContext(target, []*entity.Unit{sameBedrooms, sameCity, unrelated, leased, self, nil})

	assert.Equal(t, 2, market.Comparables)
	assert.InDelta(t, 1500, market.AveragePrice, 0.001)
	assert.InDelta(t, 2.0, market.AveragePricePerSqft, 0.001)
	assert.False(t, market.IsEmpty())
}

func TestBuildMarketContext_NoComparables(t *testing.T) {
	target := newScoredUnit(nil)

	market := BuildMarketContext(target, []*entity.Unit{target})

	assert.True(t, market.IsEmpty())
	assert.Zero(t, market.AveragePrice)
}

func TestFingerprint(t *testing.T) {
	engine := NewEngine()
	unit := newScoredUnit(func(u *entity.Unit) { u.Amenities = []string{"pool", "Parking"} })
	market := MarketContext{AveragePrice: 1500, Comparables: 3}

	base := engine.Fingerprint(unit, market, scoringNow)

	reordered := unit.Clone()
	reordered.Amenities = []string{"parking", "pool"}
	assert.Equal(t, base, engine.Fingerprint(reordered, market, scoringNow))

	sameDay := scoringNow.Add(time.Hour)
	assert.Equal(t, base, engine.Fingerprint(unit, market, sameDay))

	repriced := unit.Clone()
	repriced.Price = 1600
	assert.NotEqual(t, base, engine.Fingerprint(repriced, market, scoringNow))

	assert.NotEqual(t, base, engine.Fingerprint(unit, MarketContext{AveragePrice: 1600, Comparables: 3}, scoringNow))
	assert.NotEqual(t, base, engine.Fingerprint(unit, market, scoringNow.Add(48*time.Hour)))
}

func TestFingerprint_TracksEngineTables(t *testing.T) {
	unit := newScoredUnit(func(u *entity.Unit) { u.Amenities = []string{"pool", "parking"} })
	market := MarketContext{AveragePrice: 1500, Comparables: 3}
	base := NewEngine().Fingerprint(unit, market, scoringNow)

	// Equal configuration built separately hashes the same.
	rebuilt := NewEngine(
		WithWeights(DefaultWeights()),
		WithHighDemandZones(slices.Clone(DefaultHighDemandZones)...),
	)
	assert.Equal(t, base, rebuilt.Fingerprint(unit, market, scoringNow))

	tests := []struct {
		name   string
		engine *Engine
	}{
		{
			name:   "amenity weight",
			engine: NewEngine(WithWeights(DefaultWeights().WithAmenity("pool", 9))),
		},
		{
			name:   "new alias",
			engine: NewEngine(WithWeights(DefaultWeights().WithAmenity("pool", 4, "swimming_pool"))),
		},
		{
			name:   "amenity cap",
			engine: NewEngine(WithWeights(DefaultWeights().WithCap(5))),
		},
		{
			name:   "high demand zones",
			engine: NewEngine(WithHighDemandZones("10001")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.engine.Fingerprint(unit, market, scoringNow))
		})
	}
}
