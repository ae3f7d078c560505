// Package scoring derives a unit's priority score from its attributes and
// its market context. Everything here is pure: no I/O and no shared state.
package scoring

import (
	"math"
	"strings"
	"time"

	"leasing/internal/domain/entity"
)

// Breakdown keys
const (
	TermBase                 = "base"
	TermPriceCompetitiveness = "price_competitiveness"
	TermListingFreshness     = "listing_freshness"
	TermDesirableFeatures    = "desirable_features"
	TermUnitSizeAppeal       = "unit_size_appeal"
	TermLocationDesirability = "location_desirability"
)

const (
	BaseScore = 50.0
	MinScore  = 0.0
	MaxScore  = 100.0

	priceBonus       = 20.0
	pricePenalty     = -15.0
	priceBonusBelow  = -0.10 // deviation at or below which the full bonus applies
	pricePenaltyFrom = 0.15  // deviation at or above which the full penalty applies

	freshBonus      = 15.0
	stalePenalty    = -15.0
	freshUntilDays  = 3
	staleAfterDays  = 45
	locationBonus   = 10.0
	largeUnitAppeal = 5.0
)

// sizeAppeal is indexed by bedroom count; larger units use largeUnitAppeal.
var sizeAppeal = []float64{6, 10, 15, 15, 11, 8}

// DefaultHighDemandZones are the postal zones that earn the location bonus.
var DefaultHighDemandZones = []string{"40202", "40204", "40206", "40207", "40222"}

// Result is the score of one unit together with its explanation.
type Result struct {
	Total     float64            // Clamped to [MinScore, MaxScore].
	RawTotal  float64            // Sum of Breakdown before clamping.
	Breakdown map[string]float64 // Pre-clamp per-term values.
}

// Engine scores units. The zero value is not usable; build one with NewEngine.
type Engine struct {
	weights *Weights
	zones   map[string]struct{}
	config  string // digest of weights and zones, fixed by NewEngine
}

// Option customizes an Engine.
type Option func(*Engine)

// WithWeights replaces the amenity weight table.
func WithWeights(weights *Weights) Option {
	return func(e *Engine) {
		if weights != nil {
			e.weights = weights
		}
	}
}

// WithHighDemandZones replaces the high-demand postal zone set.
func WithHighDemandZones(zones ...string) Option {
	return func(e *Engine) {
		e.zones = make(map[string]struct{}, len(zones))
		for _, zone := range zones {
			if normalized := normalizeZone(zone); normalized != "" {
				e.zones[normalized] = struct{}{}
			}
		}
	}
}

// NewEngine returns an engine with the default tables, adjusted by opts.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{weights: DefaultWeights()}
	WithHighDemandZones(DefaultHighDemandZones...)(engine)

	for _, opt := range opts {
		opt(engine)
	}
	engine.config = engine.configDigest()

	return engine
}

// Weights returns the amenity table in use.
func (e *Engine) Weights() *Weights {
	return e.weights
}

// Score computes the score of unit against market as of asOf. It never fails;
// out-of-range inputs are clamped before use.
func (e *Engine) Score(unit *entity.Unit, market MarketContext, asOf time.Time) Result {
	breakdown := map[string]float64{
		TermBase:                 BaseScore,
		TermPriceCompetitiveness: round2(priceTerm(unit.Price, market)),
		TermListingFreshness:     round2(freshnessTerm(unit.ListingAgeDays(asOf))),
		TermDesirableFeatures:    round2(e.weights.Sum(unit.Amenities)),
		TermUnitSizeAppeal:       sizeTerm(unit.Bedrooms),
		TermLocationDesirability: e.locationTerm(unit.Location.Zip),
	}

	var raw float64
	for _, value := range breakdown {
		raw += value
	}
	raw = round2(raw)

	return Result{
		Total:     math.Max(MinScore, math.Min(MaxScore, raw)),
		RawTotal:  raw,
		Breakdown: breakdown,
	}
}

func priceTerm(price int, market MarketContext) float64 {
	if market.IsEmpty() {
		return 0
	}

	deviation := float64(max(price, 0))/market.AveragePrice - 1

	switch {
	case deviation <= priceBonusBelow:
		return priceBonus
	case deviation >= pricePenaltyFrom:
		return pricePenalty
	default:
		return lerp(deviation, priceBonusBelow, pricePenaltyFrom, priceBonus, pricePenalty)
	}
}

func freshnessTerm(ageDays int) float64 {
	switch {
	case ageDays < freshUntilDays:
		return freshBonus
	case ageDays > staleAfterDays:
		return stalePenalty
	default:
		return lerp(float64(ageDays), freshUntilDays, staleAfterDays, freshBonus, stalePenalty)
	}
}

func sizeTerm(bedrooms int) float64 {
	bedrooms = max(bedrooms, 0)
	if bedrooms >= len(sizeAppeal) {
		return largeUnitAppeal
	}

	return sizeAppeal[bedrooms]
}

func (e *Engine) locationTerm(zip string) float64 {
	if _, ok := e.zones[normalizeZone(zip)]; ok {
		return locationBonus
	}

	return 0
}

// lerp maps x from [x0, x1] onto [y0, y1].
func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalizeZone(zip string) string {
	return strings.TrimSpace(zip)
}
