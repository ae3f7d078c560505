package usecase

import (
	"context"
	"time"

	"leasing/internal/domain/entity"

	"github.com/google/uuid"
)

// ScoreReport is a unit's score as seen by a reader
type ScoreReport struct {
	UnitID    uuid.UUID
	Score     float64
	RawTotal  float64
	Breakdown map[string]float64
	Fresh     bool       // True when the cached score still matches the unit's inputs.
	ScoredAt  *time.Time // When the cached score was computed.
}

// RecalculationReport summarizes one bulk recalculation pass
type RecalculationReport struct {
	Total     int
	Updated   int
	Unchanged int
	Skipped   int // Units deleted while the pass was running.
	Failed    map[uuid.UUID]error
	Duration  time.Duration
}

// ScoreUsecase defines the lead scoring use cases
type ScoreUsecase interface {
	// ComputeScore reports the unit's score without writing anything
	ComputeScore(ctx context.Context, id uuid.UUID) (*ScoreReport, error)

	// Recalculate rescores one unit, stores it and notifies observers
	Recalculate(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// RecalculateAll rescores every unit, notifying observers of changed ones
	RecalculateAll(ctx context.Context) (*RecalculationReport, error)

	// Prioritized returns up to limit available units, highest score first
	Prioritized(ctx context.Context, limit int) ([]*entity.Unit, error)
}
