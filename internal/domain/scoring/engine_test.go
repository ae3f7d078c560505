package scoring

import (
	"testing"
	"time"

	"leasing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoringNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newScoredUnit(mutate func(*entity.Unit)) *entity.Unit {
	unit := &entity.Unit{
		ID:         uuid.New(),
		Bedrooms:   2,
		Bathrooms:  1,
		SquareFeet: 900,
		Price:      1500,
		Location:   entity.Location{City: "Louisville", Zip: "40299"},
		Status:     entity.UnitStatusAvailable,
		DateListed: scoringNow.Add(-10 * 24 * time.Hour),
	}
	if mutate != nil {
		mutate(unit)
	}

	return unit
}

func sumBreakdown(breakdown map[string]float64) float64 {
	var total float64
	for _, v := range breakdown {
		total += v
	}

	return total
}

func TestEngine_Score_HighDemandScenarioClampsToMax(t *testing.T) {
	engine := NewEngine()
	unit := newScoredUnit(func(u *entity.Unit) {
		u.Amenities = []string{"parking", "laundry", "pets"}
		u.Location.Zip = "40206"
		u.DateListed = scoringNow
	})
	market := MarketContext{AveragePrice: 1500, Comparables: 4}

	result := engine.Score(unit, market, scoringNow)

	assert.Equal(t, map[string]float64{
		TermBase:                 50,
		TermPriceCompetitiveness: 6,
		TermListingFreshness:     15,
		TermDesirableFeatures:    20,
		TermUnitSizeAppeal:       15,
		TermLocationDesirability: 10,
	}, result.Breakdown)
	assert.InDelta(t, 116, result.RawTotal, 0.001)
	assert.InDelta(t, 100, result.Total, 0.001)
}

func TestEngine_Score_EmptyMarketGivesNeutralPriceTerm(t *testing.T) {
	engine := NewEngine()

	result := engine.Score(newScoredUnit(nil), MarketContext{}, scoringNow)

	assert.Zero(t, result.Breakdown[TermPriceCompetitiveness])
}

func TestEngine_Score_PriceCompetitiveness(t *testing.T) {
	tests := []struct {
		name    string
		price   int
		average float64
		want    float64
	}{
		{"Far below average", 1000, 2000, 20},
		{"Exactly ten percent below", 900, 1000, 20},
		{"At average", 1000, 1000, 6},
		{"Five percent above", 1050, 1000, -1},
		{"Exactly fifteen percent above", 1150, 1000, -15},
		{"Far above average", 3000, 1000, -15},
		{"Negative price treated as zero", -50, 1000, 20},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := newScoredUnit(func(u *entity.Unit) { u.Price = tt.price })

			result := engine.Score(unit, MarketContext{AveragePrice: tt.average, Comparables: 1}, scoringNow)

			assert.InDelta(t, tt.want, result.Breakdown[TermPriceCompetitiveness], 0.001)
		})
	}
}

func TestEngine_Score_ListingFreshness(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"Brand new", 0, 15},
		{"Two days", 2 * 24 * time.Hour, 15},
		{"Three days", 3 * 24 * time.Hour, 15},
		{"Midpoint", 24 * 24 * time.Hour, 0},
		{"Forty five days", 45 * 24 * time.Hour, -15},
		{"Stale", 90 * 24 * time.Hour, -15},
		{"Listed in the future", -5 * 24 * time.Hour, 15},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := newScoredUnit(func(u *entity.Unit) { u.DateListed = scoringNow.Add(-tt.age) })

			result := engine.Score(unit, MarketContext{}, scoringNow)

			assert.InDelta(t, tt.want, result.Breakdown[TermListingFreshness], 0.001)
		})
	}
}

func TestEngine_Score_UnitSizeAppeal(t *testing.T) {
	want := map[int]float64{-1: 6, 0: 6, 1: 10, 2: 15, 3: 15, 4: 11, 5: 8, 6: 5, 9: 5}

	engine := NewEngine()
	for bedrooms, expected := range want {
		unit := newScoredUnit(func(u *entity.Unit) { u.Bedrooms = bedrooms })

		result := engine.Score(unit, MarketContext{}, scoringNow)

		assert.Equal(t, expected, result.Breakdown[TermUnitSizeAppeal], "bedrooms=%d", bedrooms)
	}
}

func TestEngine_Score_StaysInRangeAndBreakdownSums(t *testing.T) {
	engine := NewEngine()
	units := []*entity.Unit{
		newScoredUnit(nil),
		newScoredUnit(func(u *entity.Unit) {
			u.Price = 9000
			u.Bedrooms = 0
			u.DateListed = scoringNow.Add(-400 * 24 * time.Hour)
		}),
		newScoredUnit(func(u *entity.Unit) {
			u.Price = 100
			u.Amenities = []string{"Parking", "gym", "pool", "balcony", "dishwasher", "AC"}
			u.Location.Zip = " 40202 "
		}),
	}
	markets := []MarketContext{{}, {AveragePrice: 1500, Comparables: 3}, {AveragePrice: 100, Comparables: 1}}

	for _, unit := range units {
		for _, market := range markets {
			result := engine.Score(unit, market, scoringNow)

			assert.GreaterOrEqual(t, result.Total, MinScore)
			assert.LessOrEqual(t, result.Total, MaxScore)
			assert.InDelta(t, result.RawTotal, sumBreakdown(result.Breakdown), 0.01)
		}
	}
}

func TestEngine_Score_Deterministic(t *testing.T) {
	engine := NewEngine()
	unit := newScoredUnit(func(u *entity.Unit) { u.Amenities = []string{"pool", "parking"} })
	market := MarketContext{AveragePrice: 1400, Comparables: 2}

	first := engine.Score(unit, market, scoringNow)
	second := engine.Score(unit, market, scoringNow)

	assert.Equal(t, first, second)
}

func TestEngine_WithHighDemandZones(t *testing.T) {
	engine := NewEngine(WithHighDemandZones("90210"))

	inZone := engine.Score(newScoredUnit(func(u *entity.Unit) { u.Location.Zip = "90210" }), MarketContext{}, scoringNow)
	outOfZone := engine.Score(newScoredUnit(func(u *entity.Unit) { u.Location.Zip = "40202" }), MarketContext{}, scoringNow)

	assert.Equal(t, 10.0, inZone.Breakdown[TermLocationDesirability])
	assert.Zero(t, outOfZone.Breakdown[TermLocationDesirability])
}

func TestWeights_Sum(t *testing.T) {
	weights := DefaultWeights()

	tests := []struct {
		name      string
		amenities []string
		want      float64
	}{
		{"No amenities", nil, 0},
		{"Unknown amenity scores zero", []string{"rooftop_garden"}, 0},
		{"Alias resolves to canonical", []string{"Washer Dryer"}, 7},
		{"Alias and canonical count once", []string{"laundry", "in-unit laundry"}, 7},
		{"Capped", []string{"parking", "laundry", "pets", "gym", "pool"}, DefaultAmenityCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weights.Sum(tt.amenities))
		})
	}
}

func TestWeights_WithAmenity(t *testing.T) {
	base := DefaultWeights()

	extended := base.WithAmenity("EV Charging", 5, "ev_charger")

	assert.Equal(t, 5.0, extended.Weight("ev charging"))
	assert.Equal(t, 5.0, extended.Weight("EV-Charger"))
	assert.Zero(t, base.Weight("ev_charging"), "original table must stay untouched")

	engine := NewEngine(WithWeights(extended))
	result := engine.Score(newScoredUnit(func(u *entity.Unit) { u.Amenities = []string{"ev_charger"} }), MarketContext{}, scoringNow)
	require.Contains(t, result.Breakdown, TermDesirableFeatures)
	assert.Equal(t, 5.0, result.Breakdown[TermDesirableFeatures])
}
