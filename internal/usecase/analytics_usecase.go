package usecase

import (
	"context"

	"leasing/internal/domain/entity"
)

// AnalyticsUsecase defines the reporting use cases
type AnalyticsUsecase interface {
	// Dashboard returns the headline metrics
	Dashboard(ctx context.Context) (*entity.Dashboard, error)

	// PriceTrends returns daily average listing prices over the last days
	PriceTrends(ctx context.Context, days int) ([]entity.PriceTrendPoint, error)

	// Distribution groups units by bedrooms, status and city
	Distribution(ctx context.Context) (*entity.Distribution, error)

	// Performance returns the operational KPIs
	Performance(ctx context.Context) (*entity.Performance, error)
}
