package impl

import (
	"context"
	"testing"

	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/scoring"
	"leasing/internal/infra/persistence/memory"
	mockService "leasing/internal/mocks/service"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitService_CreateUnit_Defaults(t *testing.T) {
	fx := createLeasingFixtures(t)

	unit, err := fx.units.CreateUnit(context.Background(), sampleInput(1800))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, unit.ID)
	assert.Equal(t, entity.UnitStatusAvailable, unit.Status)
	assert.Equal(t, testNow, unit.DateListed)
	assert.Equal(t, []string{"balcony", "in_unit_laundry", "parking"}, unit.Amenities)
	assert.Nil(t, unit.DateLeased)
}

func TestUnitService_CreateUnit_LeasedOnArrival(t *testing.T) {
	fx := createLeasingFixtures(t)

	input := sampleInput(1800)
	input.Status = entity.UnitStatusLeased

	unit, err := fx.units.CreateUnit(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, unit.DateLeased)
	assert.Equal(t, testNow, *unit.DateLeased)
}

func TestUnitService_CreateUnit_InvalidInput(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	_, err := fx.units.CreateUnit(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input := sampleInput(1800)
	input.Status = "archived"
	_, err = fx.units.CreateUnit(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	assert.Empty(t, fx.events.Events())
}

func TestUnitService_UpdateUnit_Validation(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)
	fx.events.Reset()

	_, err = fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{Status: ptr(entity.UnitStatus("sold"))})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	_, err = fx.units.UpdateUnit(ctx, uuid.New(), &usecase.UnitPatch{Price: ptr(1900)})
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)

	assert.Empty(t, fx.events.Events())
}

func TestUnitService_UpdateUnit_AppliesPatchAndRescores(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	unit, err := fx.units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)

	amenities := []string{"Pool", "gym"}
	updated, err := fx.units.UpdateUnit(ctx, unit.ID, &usecase.UnitPatch{
		Amenities:   &amenities,
		Description: ptr("Renovated kitchen and new floors"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"gym", "pool"}, updated.Amenities)
	assert.Equal(t, "Renovated kitchen and new floors", updated.Description)
	assert.Equal(t, unit.Price, updated.Price)
	assert.Equal(t, 8.0, updated.ScoreBreakdown[scoring.TermDesirableFeatures])
	assert.NotEqual(t, unit.ScoreFingerprint, updated.ScoreFingerprint)
}

func TestUnitService_ListUnits_Paging(t *testing.T) {
	fx := createLeasingFixtures(t)
	ctx := context.Background()

	for _, price := range []int{1200, 1500, 1800, 2100, 2400} {
		_, err := fx.units.CreateUnit(ctx, sampleInput(price))
		require.NoError(t, err)
	}

	page, err := fx.units.ListUnits(ctx, repository.UnitFilter{Offset: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PageSize)
	require.Len(t, page.Units, 2)
	assert.GreaterOrEqual(t, page.Units[0].LeadScore, page.Units[1].LeadScore)

	maxPrice := 1600
	cheap, err := fx.units.ListUnits(ctx, repository.UnitFilter{PriceMax: &maxPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cheap.Total)
	assert.Equal(t, 1, cheap.Page)
}

func TestUnitService_GenerateListingQR(t *testing.T) {
	repo := memory.NewUnitRepository()
	qr := mockService.NewMockQRCodeService(t)
	coordinator := newCoordinator(repo, &recordingBroadcaster{}, scoring.NewEngine(), 1, newDiscardLogger(), (&testClock{now: testNow}).Now)
	units := NewUnitService(coordinator, repo, qr)
	ctx := context.Background()

	unit, err := units.CreateUnit(ctx, sampleInput(1800))
	require.NoError(t, err)

	qr.EXPECT().
		GenerateListingQR(unit.ID).
		Return([]byte("png"), nil).
		Once()

	png, err := units.GenerateListingQR(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = units.GenerateListingQR(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnitNotFound)

	qr.EXPECT().
		GenerateListingQR(unit.ID).
		Return(nil, errors.New("content too long")).
		Once()

	_, err = units.GenerateListingQR(ctx, unit.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
