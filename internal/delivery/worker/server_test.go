package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"leasing/config"
	mockUsecase "leasing/internal/mocks/usecase"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T, schedule string, scoreUC usecase.ScoreUsecase) (*recalculationWorker, *fxtest.Lifecycle, error) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc: lc,
		Cfg: &config.Config{
			Recalculation: &config.RecalculationConfig{Schedule: schedule, Timeout: time.Second},
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		ScoreUC: scoreUC,
	})
	if err != nil {
		return nil, lc, err
	}

	return srv.(*recalculationWorker), lc, nil
}

func TestRecalculationWorker_RunCallsRecalculateAll(t *testing.T) {
	scoreUC := mockUsecase.NewMockScoreUsecase(t)
	w, _, err := newTestWorker(t, "@daily", scoreUC)
	require.NoError(t, err)

	scoreUC.EXPECT().
		RecalculateAll(mock.Anything).
		Run(func(ctx context.Context) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(&usecase.RecalculationReport{Total: 2, Updated: 1, Unchanged: 1, Failed: map[uuid.UUID]error{}}, nil).
		Once()

	w.run()
}

func TestRecalculationWorker_RunSurvivesFailure(t *testing.T) {
	scoreUC := mockUsecase.NewMockScoreUsecase(t)
	w, _, err := newTestWorker(t, "@daily", scoreUC)
	require.NoError(t, err)

	scoreUC.EXPECT().
		RecalculateAll(mock.Anything).
		Return(nil, errors.New("store unavailable")).
		Once()

	assert.NotPanics(t, w.run)
}

func TestRecalculationWorker_InvalidSchedule(t *testing.T) {
	_, _, err := newTestWorker(t, "every tuesday-ish", mockUsecase.NewMockScoreUsecase(t))
	assert.Error(t, err)
}

func TestRecalculationWorker_EmptyScheduleDisables(t *testing.T) {
	w, lc, err := newTestWorker(t, "", mockUsecase.NewMockScoreUsecase(t))
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, w.Serve(context.Background()))
	assert.False(t, w.enabled)
	assert.Empty(t, w.cron.Entries())
	lc.RequireStop()
}

func TestRecalculationWorker_ScheduledRun(t *testing.T) {
	scoreUC := mockUsecase.NewMockScoreUsecase(t)
	w, lc, err := newTestWorker(t, "@every 1s", scoreUC)
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	scoreUC.EXPECT().
		RecalculateAll(mock.Anything).
		Run(func(context.Context) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(&usecase.RecalculationReport{Failed: map[uuid.UUID]error{}}, nil)

	lc.RequireStart()
	require.NoError(t, w.Serve(context.Background()))

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled recalculation did not run")
	}

	lc.RequireStop()
}
