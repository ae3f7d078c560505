// Package worker runs background jobs on a cron schedule.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"leasing/config"
	"leasing/internal/delivery"
	"leasing/internal/domain/lifecycle"
	"leasing/internal/errors"
	"leasing/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type recalculationWorker struct {
	cfg     *config.Config
	logger  *slog.Logger
	scoreUC usecase.ScoreUsecase
	cron    *cron.Cron
	enabled bool

	// runCtx is cancelled on shutdown so a pass in progress stops early.
	runCtx    context.Context
	cancelRun context.CancelFunc
	startOnce sync.Once
}

// ServerParams holds dependencies for the recalculation worker
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	ScoreUC usecase.ScoreUsecase
}

// NewServer creates the worker that periodically rescores every unit.
// Freshness decays with listing age, so scores drift even without writes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "recalculation_worker"))
	runCtx, cancel := context.WithCancel(context.Background())

	w := &recalculationWorker{
		cfg:       params.Cfg,
		logger:    logger,
		scoreUC:   params.ScoreUC,
		runCtx:    runCtx,
		cancelRun: cancel,
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger: logger}),
			cron.SkipIfStillRunning(cronLogger{logger: logger}),
		)),
	}

	if schedule := params.Cfg.Recalculation.Schedule; schedule != "" {
		if _, err := w.cron.AddFunc(schedule, w.run); err != nil {
			cancel()

			return nil, errors.Wrapf(err, "invalid recalculation schedule %q", schedule)
		}
		w.enabled = true
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// Serve starts the schedule and returns immediately.
func (w *recalculationWorker) Serve(_ context.Context) error {
	if !w.enabled {
		w.logger.Info("Periodic recalculation disabled")

		return nil
	}

	w.startOnce.Do(w.cron.Start)
	w.logger.Info("Periodic recalculation scheduled", slog.String("schedule", w.cfg.Recalculation.Schedule))

	return nil
}

// run performs one bulk pass bounded by the configured timeout.
func (w *recalculationWorker) run() {
	ctx, cancel := context.WithTimeout(w.runCtx, w.cfg.Recalculation.Timeout)
	defer cancel()

	started := time.Now()
	report, err := w.scoreUC.RecalculateAll(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Scheduled recalculation failed", slog.Any("error", err))

		return
	}

	w.logger.InfoContext(ctx, "Scheduled recalculation completed",
		slog.Int("total", report.Total),
		slog.Int("updated", report.Updated),
		slog.Int("failed", len(report.Failed)),
		slog.Duration("elapsed", time.Since(started)),
	)
}

func (w *recalculationWorker) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w.logger.Info("Stopping recalculation worker")

	w.cancelRun()
	select {
	case <-w.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "recalculation still running at shutdown")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
