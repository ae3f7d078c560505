package entity

import "time"

// PriceTrendPoint is the average listing price of units listed on one day.
type PriceTrendPoint struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	AveragePrice float64 `json:"average_price"`
	UnitCount    int     `json:"unit_count"`
}

// FeaturePopularity compares how often a feature appears on leased versus available units.
type FeaturePopularity struct {
	Feature         string  `json:"feature"`
	LeasedCount     int     `json:"leased_count"`
	AvailableCount  int     `json:"available_count"`
	TotalCount      int     `json:"total_count"`
	PopularityRatio float64 `json:"popularity_ratio"` // leased / (leased + available)
}

// Dashboard is the headline analytics view.
type Dashboard struct {
	TotalUnits         int                 `json:"total_units"`
	AvailableUnits     int                 `json:"available_units"`
	LeasedUnits        int                 `json:"leased_units"`
	PendingUnits       int                 `json:"pending_units"`
	AverageDaysToLease float64             `json:"avg_days_to_lease"`
	LeaseConversion    float64             `json:"lease_conversion_rate"`
	AveragePrice       float64             `json:"avg_price"`
	PopularFeatures    []FeaturePopularity `json:"most_popular_features"`
	PriceTrends        []PriceTrendPoint   `json:"price_trends"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// CountBucket is one slice of a distribution.
type CountBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Distribution groups units by bedrooms, status and city.
type Distribution struct {
	Bedrooms []CountBucket `json:"bedroom_distribution"`
	Status   []CountBucket `json:"status_distribution"`
	Cities   []CountBucket `json:"city_distribution"`
}

// Performance holds the operational KPIs.
type Performance struct {
	OccupancyRate       float64 `json:"occupancy_rate"`
	AverageLeadScore    float64 `json:"avg_lead_score_available"`
	RecentLeases        int     `json:"recent_leases_30_days"`
	AveragePricePerSqft float64 `json:"avg_price_per_sqft"`
	TotalUnits          int     `json:"total_units"`
	AvailableUnits      int     `json:"available_units"`
	LeasedUnits         int     `json:"leased_units"`
}
