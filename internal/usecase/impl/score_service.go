package impl

import (
	"context"
	"math"

	"leasing/config"
	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"
	"leasing/internal/usecase"

	"github.com/google/uuid"
)

type scoreService struct {
	coordinator  *Coordinator
	repo         repository.UnitRepository
	defaultLimit int
}

// NewScoreService creates a new lead scoring service instance
func NewScoreService(cfg *config.Config, coordinator *Coordinator, repo repository.UnitRepository) usecase.ScoreUsecase {
	return &scoreService{
		coordinator:  coordinator,
		repo:         repo,
		defaultLimit: cfg.Scoring.PrioritizedLimit,
	}
}

// ComputeScore returns the cached score when its fingerprint still matches
// the unit's inputs, otherwise a fresh computation. Nothing is written.
func (s *scoreService) ComputeScore(ctx context.Context, id uuid.UUID) (*usecase.ScoreReport, error) {
	unit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "get unit")
	}

	result, fingerprint, err := s.coordinator.Evaluate(ctx, unit)
	if err != nil {
		return nil, err
	}

	if unit.ScoredAt != nil && unit.ScoreFingerprint == fingerprint {
		return &usecase.ScoreReport{
			UnitID:    unit.ID,
			Score:     unit.LeadScore,
			RawTotal:  sumTerms(unit.ScoreBreakdown),
			Breakdown: unit.ScoreBreakdown,
			Fresh:     true,
			ScoredAt:  unit.ScoredAt,
		}, nil
	}

	return &usecase.ScoreReport{
		UnitID:    unit.ID,
		Score:     result.Total,
		RawTotal:  result.RawTotal,
		Breakdown: result.Breakdown,
		Fresh:     false,
		ScoredAt:  unit.ScoredAt,
	}, nil
}

// Recalculate rescores one unit, stores it and notifies observers
func (s *scoreService) Recalculate(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	return s.coordinator.Recalculate(ctx, id)
}

// RecalculateAll rescores every unit, notifying observers of changed ones
func (s *scoreService) RecalculateAll(ctx context.Context) (*usecase.RecalculationReport, error) {
	return s.coordinator.RecalculateAll(ctx)
}

// Prioritized returns up to limit available units, highest score first
func (s *scoreService) Prioritized(ctx context.Context, limit int) ([]*entity.Unit, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	available := entity.UnitStatusAvailable
	units, err := s.repo.List(ctx, repository.UnitFilter{
		Status:       &available,
		OrderByScore: true,
		Limit:        limit,
	})
	if err != nil {
		return nil, mapStoreError(err, "list prioritized units")
	}

	return units, nil
}

func sumTerms(breakdown map[string]float64) float64 {
	var total float64
	for _, value := range breakdown {
		total += value
	}

	return math.Round(total*100) / 100
}
