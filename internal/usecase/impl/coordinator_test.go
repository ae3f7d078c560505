package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/scoring"
	mockRepo "leasing/internal/mocks/repository"
	mockService "leasing/internal/mocks/service"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_CreateScoresAndPublishes(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), unit.Version)
	assert.Equal(t, scoring.BaseScore, unit.ScoreBreakdown[scoring.TermBase])
	assert.NotEmpty(t, unit.ScoreFingerprint)
	require.NotNil(t, unit.ScoredAt)
	assert.Equal(t, testNow, *unit.ScoredAt)
	assert.Equal(t, testNow, unit.CreatedAt)

	events := fx.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.UnitEventUpdated, events[0].Kind)
	assert.Equal(t, unit.ID, events[0].UnitID)
	assert.Equal(t, unit.LeadScore, events[0].Unit.LeadScore)
}

func TestCoordinator_LeaseTransitionStampsDateLeasedOnce(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	assert.Nil(t, unit.DateLeased)
	fx.events.Reset()

	leased, err := fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{Status: ptr(entity.UnitStatusLeased)})
	require.NoError(t, err)
	require.NotNil(t, leased.DateLeased)
	assert.Equal(t, testNow, *leased.DateLeased)

	events := fx.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.UnitStatusLeased, events[0].Unit.Status)

	fx.clock.Advance(time.Hour)
	again, err := fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{
		Status: ptr(entity.UnitStatusLeased),
		Price:  ptr(1850),
	})
	require.NoError(t, err)
	require.NotNil(t, again.DateLeased)
	assert.Equal(t, testNow, *again.DateLeased)

	relisted, err := fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{Status: ptr(entity.UnitStatusAvailable)})
	require.NoError(t, err)
	assert.Nil(t, relisted.DateLeased)
}

func TestCoordinator_DeletePublishesSingleDeletedEvent(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	fx.events.Reset()

	require.NoError(t, fx.units.DeleteUnit(ctx, unit.ID))

	events := fx.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, entity.UnitEventDeleted, events[0].Kind)
	assert.Equal(t, unit.ID, events[0].UnitID)
	assert.Nil(t, events[0].Unit)

	_, err = fx.units.GetUnit(ctx, unit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)

	page, err := fx.units.ListUnits(ctx, repository.UnitFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Units)

	err = fx.units.DeleteUnit(ctx, unit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)
	assert.Len(t, fx.events.Events(), 1)
}

func TestCoordinator_RecalculateAlwaysPublishes(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	fx.events.Reset()

	first, err := fx.scores.Recalculate(ctx, unit.ID)
	require.NoError(t, err)
	second, err := fx.scores.Recalculate(ctx, unit.ID)
	require.NoError(t, err)

	assert.Equal(t, unit.LeadScore, first.LeadScore)
	assert.Equal(t, first.LeadScore, second.LeadScore)
	assert.Equal(t, first.ScoreBreakdown, second.ScoreBreakdown)
	assert.Equal(t, uint64(3), second.Version)
	assert.Len(t, fx.events.Events(), 2)
}

func TestCoordinator_RecalculateUnknownUnit(t *testing.T) {
	fx := createLeasingFixtures(t)

	_, err := fx.scores.Recalculate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)
	assert.Empty(t, fx.events.Events())
}

func TestCoordinator_RecalculateAllPublishesOnlyChanges(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	for _, price := range []int{1500, 1800, 2400} {
		_, err := fx.units.CreateUnit(ctx, sampleInput(price))
		require.NoError(t, err)
	}

	// Earlier units were scored before their comparables existed.
	first, err := fx.scores.RecalculateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Total)
	assert.Equal(t, 3, first.Updated+first.Unchanged)
	assert.Empty(t, first.Failed)

	fx.events.Reset()
	second, err := fx.scores.RecalculateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 3, second.Unchanged)
	assert.Empty(t, fx.events.Events())

	fx.clock.Advance(10 * 24 * time.Hour)
	third, err := fx.scores.RecalculateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Updated)

	events := fx.events.Events()
	require.Len(t, events, 3)
	for _, event := range events {
		assert.Equal(t, entity.UnitEventUpdated, event.Kind)
		assert.Less(t, event.Unit.ScoreBreakdown[scoring.TermListingFreshness], 15.0)
	}
}

func TestCoordinator_RecalculateAllIsolatesFailures(t *testing.T) {
	repo := mockRepo.NewMockUnitRepository(t)
	events := &recordingBroadcaster{}
	coordinator := newCoordinator(repo, events, scoring.NewEngine(), 2, newDiscardLogger(), func() time.Time { return testNow })
	ctx := context.Background()

	broken := &entity.Unit{ID: uuid.New()}
	vanished := &entity.Unit{ID: uuid.New()}
	healthy := &entity.Unit{
		ID:         uuid.New(),
		Bedrooms:   1,
		Price:      1200,
		Status:     entity.UnitStatusAvailable,
		DateListed: testNow,
	}

	repo.EXPECT().
		List(mock.Anything, repository.UnitFilter{}).
		Return([]*entity.Unit{broken, vanished, healthy}, nil).
		Once()
	repo.EXPECT().
		Get(mock.Anything, broken.ID).
		Return(nil, errors.New("connection reset by peer"))
	repo.EXPECT().
		Get(mock.Anything, vanished.ID).
		Return(nil, repository.ErrUnitNotFound)
	repo.EXPECT().
		Get(mock.Anything, healthy.ID).
		Return(healthy.Clone(), nil)
	repo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter repository.UnitFilter) bool { return filter.Status != nil })).
		Return(nil, nil)
	repo.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("*entity.Unit")).
		RunAndReturn(func(_ context.Context, unit *entity.Unit) (*entity.Unit, error) {
			return unit.Clone(), nil
		}).
		Once()

	report, err := coordinator.RecalculateAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Failed, 1)
	assert.True(t, domainerrors.IsStoreUnavailable(report.Failed[broken.ID]))

	published := events.Events()
	require.Len(t, published, 1)
	assert.Equal(t, healthy.ID, published[0].UnitID)
}

func TestCoordinator_StoreFailureIsReportedAsUnavailable(t *testing.T) {
	repo := mockRepo.NewMockUnitRepository(t)
	broadcaster := mockService.NewMockUnitBroadcaster(t)
	coordinator := newCoordinator(repo, broadcaster, scoring.NewEngine(), 1, newDiscardLogger(), func() time.Time { return testNow })
	units := NewUnitService(coordinator, repo, nil)
	ctx := context.Background()

	repo.EXPECT().
		List(mock.Anything, mock.Anything).
		Return(nil, nil)
	repo.EXPECT().
		Put(mock.Anything, mock.AnythingOfType("*entity.Unit")).
		Return(nil, errors.New("disk full"))

	_, err := units.CreateUnit(ctx, sampleInput(1800))
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreUnavailable(err))
	assert.NotErrorIs(t, err, domainerrors.ErrUnitNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestCoordinator_ConcurrentUpdatesKeepCommitOrder(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	fx.events.Reset()

	const writers = 20
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{Price: ptr(1500 + i*10)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := fx.units.GetUnit(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(writers+1), stored.Version)

	events := fx.events.Events()
	require.Len(t, events, writers)
	for i, event := range events {
		assert.Equal(t, uint64(i+2), event.Unit.Version)
	}
	assert.Equal(t, stored.Price, events[writers-1].Unit.Price)
	assert.Zero(t, fx.coordinator.locks.size())
}
