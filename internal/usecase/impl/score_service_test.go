package impl

import (
	"context"
	"testing"
	"time"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/scoring"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreService_ComputeScore_UsesFreshCache(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)

	report, err := fx.scores.ComputeScore(ctx, unit.ID)
	require.NoError(t, err)

	assert.True(t, report.Fresh)
	assert.Equal(t, unit.LeadScore, report.Score)
	assert.Equal(t, unit.ScoreBreakdown, report.Breakdown)
	require.NotNil(t, report.ScoredAt)
	assert.Equal(t, testNow, *report.ScoredAt)
}

func TestScoreService_ComputeScore_StaleCacheIsRecomputedWithoutWriting(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	fx.events.Reset()

	fx.clock.Advance(30 * 24 * time.Hour)

	report, err := fx.scores.ComputeScore(ctx, unit.ID)
	require.NoError(t, err)
	assert.False(t, report.Fresh)
	assert.Less(t, report.Score, unit.LeadScore)

	stored, err := fx.units.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, unit.LeadScore, stored.LeadScore)
	assert.Equal(t, unit.Version, stored.Version)
	assert.Empty(t, fx.events.Events())
}

func TestScoreService_ComputeScore_ReweightedEngineInvalidatesCache(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)

	engine := scoring.NewEngine(scoring.WithWeights(scoring.DefaultWeights().WithAmenity("parking", 1)))
	coordinator := newCoordinator(fx.repo, fx.events, engine, 4, newDiscardLogger(), fx.clock.Now)
	scores := NewScoreService(newTestConfig(), coordinator, fx.repo)

	report, err := scores.ComputeScore(ctx, unit.ID)
	require.NoError(t, err)
	assert.False(t, report.Fresh)
	assert.Less(t, report.Score, unit.LeadScore)
}

func TestScoreService_ComputeScore_UnknownUnit(t *testing.T) {
	fx := createLeasingFixtures(t)

	_, err := fx.scores.ComputeScore(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)
}

func TestScoreService_Prioritized(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	for _, price := range []int{1200, 1500, 1800, 2100} {
		_, err := fx.units.CreateUnit(ctx, sampleInput(price))
		require.NoError(t, err)
	}
	leasedInput := sampleInput(900)
	leasedInput.Status = entity.UnitStatusLeased
	leased, err := fx.units.CreateUnit(ctx, leasedInput)
	require.NoError(t, err)

	units, err := fx.scores.Prioritized(ctx, 0)
	require.NoError(t, err)
	require.Len(t, units, 3)

	for i, unit := range units {
		assert.Equal(t, entity.UnitStatusAvailable, unit.Status)
		assert.NotEqual(t, leased.ID, unit.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, units[i-1].LeadScore, unit.LeadScore)
		}
	}

	all, err := fx.scores.Prioritized(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestScoreService_RecalculateAllReport(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	report, err := fx.scores.RecalculateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RecalculationReport{Failed: map[uuid.UUID]error{}}, report)
}
