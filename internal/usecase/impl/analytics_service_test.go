package impl

import (
	"context"
	"testing"
	"time"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/infra/persistence/memory"
	mockRepo "leasing/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func createAnalyticsService(t *testing.T) *analyticsService {
	t.Helper()

	repo := memory.NewUnitRepository()
	leasedAt := testNow.Add(-10 * day)
	units := []*entity.Unit{
		{
			ID: uuid.New(), Bedrooms: 1, Price: 1000, SquareFeet: 500,
			Amenities: []string{"parking"}, Location: entity.Location{City: "Seattle"},
			Status: entity.UnitStatusAvailable, DateListed: testNow.Add(-2 * day), LeadScore: 80,
		},
		{
			ID: uuid.New(), Bedrooms: 2, Price: 2000, SquareFeet: 1000,
			Amenities: []string{"parking", "pool"}, Location: entity.Location{City: "Seattle"},
			Status: entity.UnitStatusLeased, DateListed: testNow.Add(-20 * day), DateLeased: &leasedAt,
		},
		{
			ID: uuid.New(), Bedrooms: 2, Price: 3000, SquareFeet: 1000,
			Amenities: []string{"pool"},
			Status:    entity.UnitStatusPending, DateListed: testNow.Add(-40 * day),
		},
		{
			ID: uuid.New(), Bedrooms: 1, Price: 1500,
			Amenities: []string{"pool"}, Location: entity.Location{City: "Portland"},
			Status: entity.UnitStatusAvailable, DateListed: testNow.Add(-1 * day), LeadScore: 60,
		},
	}
	for _, unit := range units {
		_, err := repo.Put(context.Background(), unit)
		require.NoError(t, err)
	}

	return &analyticsService{
		repo: repo,
		now:  func() time.Time { return testNow },
	}
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	svc := createAnalyticsService(t)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, dashboard.TotalUnits)
	assert.Equal(t, 2, dashboard.AvailableUnits)
	assert.Equal(t, 1, dashboard.LeasedUnits)
	assert.Equal(t, 1, dashboard.PendingUnits)
	assert.Equal(t, 10.0, dashboard.AverageDaysToLease)
	assert.Equal(t, 33.33, dashboard.LeaseConversion)
	assert.Equal(t, 1875.0, dashboard.AveragePrice)
	assert.Equal(t, testNow, dashboard.GeneratedAt)

	require.Len(t, dashboard.PopularFeatures, 2)
	assert.Equal(t, entity.FeaturePopularity{
		Feature: "parking", LeasedCount: 1, AvailableCount: 1, TotalCount: 2, PopularityRatio: 0.5,
	}, dashboard.PopularFeatures[0])
	assert.Equal(t, "pool", dashboard.PopularFeatures[1].Feature)

	assert.Len(t, dashboard.PriceTrends, 3)
}

func TestAnalyticsService_PriceTrends(t *testing.T) {
	svc := createAnalyticsService(t)
	ctx := context.Background()

	trends, err := svc.PriceTrends(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, []entity.PriceTrendPoint{
		{Date: testNow.Add(-20 * day).Format(time.DateOnly), AveragePrice: 2000, UnitCount: 1},
		{Date: testNow.Add(-2 * day).Format(time.DateOnly), AveragePrice: 1000, UnitCount: 1},
		{Date: testNow.Add(-1 * day).Format(time.DateOnly), AveragePrice: 1500, UnitCount: 1},
	}, trends)

	all, err := svc.PriceTrends(ctx, 365)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	for _, days := range []int{0, -3, 366} {
		_, err := svc.PriceTrends(ctx, days)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "days=%d", days)
	}
}

func TestAnalyticsService_Distribution(t *testing.T) {
	svc := createAnalyticsService(t)

	distribution, err := svc.Distribution(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []entity.CountBucket{{Label: "1", Count: 2}, {Label: "2", Count: 2}}, distribution.Bedrooms)
	assert.Equal(t, []entity.CountBucket{
		{Label: "available", Count: 2},
		{Label: "pending", Count: 1},
		{Label: "leased", Count: 1},
	}, distribution.Status)
	assert.Equal(t, []entity.CountBucket{
		{Label: "Seattle", Count: 2},
		{Label: "Portland", Count: 1},
		{Label: "Unknown", Count: 1},
	}, distribution.Cities)
}

func TestAnalyticsService_Performance(t *testing.T) {
	svc := createAnalyticsService(t)

	performance, err := svc.Performance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25.0, performance.OccupancyRate)
	assert.Equal(t, 70.0, performance.AverageLeadScore)
	assert.Equal(t, 1, performance.RecentLeases)
	assert.Equal(t, 2.33, performance.AveragePricePerSqft)
	assert.Equal(t, 4, performance.TotalUnits)
	assert.Equal(t, 2, performance.AvailableUnits)
	assert.Equal(t, 1, performance.LeasedUnits)
}

func TestAnalyticsService_EmptyStore(t *testing.T) {
	svc := &analyticsService{repo: memory.NewUnitRepository(), now: func() time.Time { return testNow }}

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalUnits)
	assert.Zero(t, dashboard.LeaseConversion)
	assert.Empty(t, dashboard.PopularFeatures)

	performance, err := svc.Performance(context.Background())
	require.NoError(t, err)
	assert.Zero(t, performance.OccupancyRate)
}

func TestAnalyticsService_StoreFailure(t *testing.T) {
	repo := mockRepo.NewMockUnitRepository(t)
	svc := NewAnalyticsService(repo)

	repo.EXPECT().
		List(mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := svc.Dashboard(context.Background())
	assert.True(t, domainerrors.IsStoreUnavailable(err))
}
