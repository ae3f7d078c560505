package scoring

import (
	"strings"

	"leasing/internal/domain/entity"
)

// MarketContext summarizes comparable units. It is derived on demand and never stored.
type MarketContext struct {
	AveragePrice        float64
	AveragePricePerSqft float64
	Comparables         int
}

// IsEmpty reports whether no comparable unit contributed.
func (m MarketContext) IsEmpty() bool {
	return m.Comparables == 0 || m.AveragePrice <= 0
}

// BuildMarketContext averages over candidates that are available, are not
// target, and share either the bedroom count or the city (case-insensitive).
func BuildMarketContext(target *entity.Unit, candidates []*entity.Unit) MarketContext {
	var (
		priceSum    float64
		sqftSum     float64
		sqftSamples int
		count       int
	)

	city := strings.TrimSpace(target.Location.City)

	for _, candidate := range candidates {
		if candidate == nil || candidate.ID == target.ID {
			continue
		}
		if candidate.Status != entity.UnitStatusAvailable {
			continue
		}

		sameBedrooms := candidate.Bedrooms == target.Bedrooms
		sameCity := city != "" && strings.EqualFold(strings.TrimSpace(candidate.Location.City), city)
		if !sameBedrooms && !sameCity {
			continue
		}

		price := float64(max(candidate.Price, 0))
		priceSum += price
		count++

		if candidate.SquareFeet > 0 {
			sqftSum += price / float64(candidate.SquareFeet)
			sqftSamples++
		}
	}

	if count == 0 {
		return MarketContext{}
	}

	market := MarketContext{
		AveragePrice: priceSum / float64(count),
		Comparables:  count,
	}
	if sqftSamples > 0 {
		market.AveragePricePerSqft = sqftSum / float64(sqftSamples)
	}

	return market
}
