package impl

import (
	"cmp"
	"context"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/usecase"
)

const (
	dashboardTrendDays    = 30
	recentLeaseWindow     = 30 * 24 * time.Hour
	popularFeatureLimit   = 10
	cityDistributionLimit = 10
	maxTrendDays          = 365
	unknownCity           = "Unknown"
)

type analyticsService struct {
	repo repository.UnitRepository
	now  func() time.Time
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(repo repository.UnitRepository) usecase.AnalyticsUsecase {
	return &analyticsService{
		repo: repo,
		now:  time.Now,
	}
}

// Dashboard returns the headline metrics
func (s *analyticsService) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	units, err := s.allUnits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	counts := countByStatus(units)

	var priceSum float64
	for _, unit := range units {
		priceSum += float64(unit.Price)
	}

	dashboard := &entity.Dashboard{
		TotalUnits:         len(units),
		AvailableUnits:     counts[entity.UnitStatusAvailable],
		LeasedUnits:        counts[entity.UnitStatusLeased],
		PendingUnits:       counts[entity.UnitStatusPending],
		AverageDaysToLease: round(averageDaysToLease(units), 1),
		LeaseConversion:    round(percentage(counts[entity.UnitStatusLeased], counts[entity.UnitStatusLeased]+counts[entity.UnitStatusAvailable]), 2),
		PopularFeatures:    popularFeatures(units, popularFeatureLimit),
		PriceTrends:        priceTrends(units, now, dashboardTrendDays),
		GeneratedAt:        now,
	}
	if len(units) > 0 {
		dashboard.AveragePrice = round(priceSum/float64(len(units)), 2)
	}

	return dashboard, nil
}

// PriceTrends returns daily average listing prices over the last days
func (s *analyticsService) PriceTrends(ctx context.Context, days int) ([]entity.PriceTrendPoint, error) {
	if days < 1 || days > maxTrendDays {
		return nil, domainerrors.ErrValidationFailed.WithDetails("days must be between 1 and " + strconv.Itoa(maxTrendDays))
	}

	units, err := s.allUnits(ctx)
	if err != nil {
		return nil, err
	}

	return priceTrends(units, s.now(), days), nil
}

// Distribution groups units by bedrooms, status and city
func (s *analyticsService) Distribution(ctx context.Context) (*entity.Distribution, error) {
	units, err := s.allUnits(ctx)
	if err != nil {
		return nil, err
	}

	bedrooms := make(map[int]int)
	cities := make(map[string]int)
	for _, unit := range units {
		bedrooms[unit.Bedrooms]++

		city := strings.TrimSpace(unit.Location.City)
		if city == "" {
			city = unknownCity
		}
		cities[city]++
	}

	distribution := &entity.Distribution{
		Bedrooms: make([]entity.CountBucket, 0, len(bedrooms)),
		Status:   make([]entity.CountBucket, 0, 3),
		Cities:   make([]entity.CountBucket, 0, len(cities)),
	}

	for _, beds := range slices.Sorted(maps.Keys(bedrooms)) {
		distribution.Bedrooms = append(distribution.Bedrooms, entity.CountBucket{Label: strconv.Itoa(beds), Count: bedrooms[beds]})
	}

	statusCounts := countByStatus(units)
	for _, status := range []entity.UnitStatus{entity.UnitStatusAvailable, entity.UnitStatusPending, entity.UnitStatusLeased} {
		if statusCounts[status] == 0 {
			continue
		}
		distribution.Status = append(distribution.Status, entity.CountBucket{Label: string(status), Count: statusCounts[status]})
	}

	for city, count := range cities {
		distribution.Cities = append(distribution.Cities, entity.CountBucket{Label: city, Count: count})
	}
	slices.SortFunc(distribution.Cities, func(a, b entity.CountBucket) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Label, b.Label)
	})
	if len(distribution.Cities) > cityDistributionLimit {
		distribution.Cities = distribution.Cities[:cityDistributionLimit]
	}

	return distribution, nil
}

// Performance returns the operational KPIs
func (s *analyticsService) Performance(ctx context.Context) (*entity.Performance, error) {
	units, err := s.allUnits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	counts := countByStatus(units)

	var (
		scoreSum     float64
		perSqftSum   float64
		perSqftCount int
		recent       int
	)
	for _, unit := range units {
		if unit.SquareFeet > 0 {
			perSqftSum += float64(unit.Price) / float64(unit.SquareFeet)
			perSqftCount++
		}

		switch unit.Status {
		case entity.UnitStatusAvailable:
			scoreSum += unit.LeadScore
		case entity.UnitStatusLeased:
			if unit.DateLeased != nil && now.Sub(*unit.DateLeased) <= recentLeaseWindow {
				recent++
			}
		case entity.UnitStatusPending:
		}
	}

	performance := &entity.Performance{
		OccupancyRate:  round(percentage(counts[entity.UnitStatusLeased], len(units)), 2),
		RecentLeases:   recent,
		TotalUnits:     len(units),
		AvailableUnits: counts[entity.UnitStatusAvailable],
		LeasedUnits:    counts[entity.UnitStatusLeased],
	}
	if available := counts[entity.UnitStatusAvailable]; available > 0 {
		performance.AverageLeadScore = round(scoreSum/float64(available), 2)
	}
	if perSqftCount > 0 {
		performance.AveragePricePerSqft = round(perSqftSum/float64(perSqftCount), 2)
	}

	return performance, nil
}

func (s *analyticsService) allUnits(ctx context.Context) ([]*entity.Unit, error) {
	units, err := s.repo.List(ctx, repository.UnitFilter{})
	if err != nil {
		return nil, mapStoreError(err, "list units for analytics")
	}

	return units, nil
}

func countByStatus(units []*entity.Unit) map[entity.UnitStatus]int {
	counts := make(map[entity.UnitStatus]int, 3)
	for _, unit := range units {
		counts[unit.Status]++
	}

	return counts
}

func averageDaysToLease(units []*entity.Unit) float64 {
	var total, count int
	for _, unit := range units {
		if unit.Status != entity.UnitStatusLeased || unit.DateLeased == nil {
			continue
		}
		days := int(unit.DateLeased.Sub(unit.DateListed) / (24 * time.Hour))
		total += max(days, 0)
		count++
	}

	if count == 0 {
		return 0
	}

	return float64(total) / float64(count)
}

// popularFeatures ranks amenities by the share of their units that are leased,
// counting leased and available units only.
func popularFeatures(units []*entity.Unit, limit int) []entity.FeaturePopularity {
	leased := make(map[string]int)
	available := make(map[string]int)

	for _, unit := range units {
		var target map[string]int
		switch unit.Status {
		case entity.UnitStatusLeased:
			target = leased
		case entity.UnitStatusAvailable:
			target = available
		case entity.UnitStatusPending:
			continue
		}
		if target == nil {
			continue
		}
		for _, amenity := range unit.Amenities {
			target[amenity]++
		}
	}

	features := make([]entity.FeaturePopularity, 0, len(leased)+len(available))
	seen := make(map[string]struct{}, len(leased)+len(available))
	for _, counts := range []map[string]int{leased, available} {
		for amenity := range counts {
			if _, dup := seen[amenity]; dup {
				continue
			}
			seen[amenity] = struct{}{}

			total := leased[amenity] + available[amenity]
			features = append(features, entity.FeaturePopularity{
				Feature:         amenity,
				LeasedCount:     leased[amenity],
				AvailableCount:  available[amenity],
				TotalCount:      total,
				PopularityRatio: round(float64(leased[amenity])/float64(total), 3),
			})
		}
	}

	slices.SortFunc(features, func(a, b entity.FeaturePopularity) int {
		if c := cmp.Compare(b.PopularityRatio, a.PopularityRatio); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalCount, a.TotalCount); c != 0 {
			return c
		}

		return cmp.Compare(a.Feature, b.Feature)
	})

	if len(features) > limit {
		features = features[:limit]
	}

	return features
}

// priceTrends averages prices of units listed within the last days, per listing day (UTC).
func priceTrends(units []*entity.Unit, now time.Time, days int) []entity.PriceTrendPoint {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)

	for _, unit := range units {
		if unit.DateListed.Before(cutoff) {
			continue
		}
		key := unit.DateListed.UTC().Format(time.DateOnly)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += float64(unit.Price)
		b.count++
	}

	trends := make([]entity.PriceTrendPoint, 0, len(buckets))
	for _, day := range slices.Sorted(maps.Keys(buckets)) {
		b := buckets[day]
		trends = append(trends, entity.PriceTrendPoint{
			Date:         day,
			AveragePrice: round(b.sum/float64(b.count), 2),
			UnitCount:    b.count,
		})
	}

	return trends
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))

	return math.Round(value*factor) / factor
}
