package impl

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"leasing/config"
	"leasing/internal/domain/entity"
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/scoring"
	"leasing/internal/domain/service"
	"leasing/internal/errors"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// CoordinatorParams defines the parameters required for the recalculation coordinator
type CoordinatorParams struct {
	fx.In

	Config      *config.Config
	Repo        repository.UnitRepository
	Broadcaster service.UnitBroadcaster
	Engine      *scoring.Engine
	Logger      *slog.Logger
}

// Coordinator owns every write to a unit. Work on one unit id runs under that
// id's lock: read, apply, score, store, then publish. Events for a unit
// therefore leave in commit order, and units never wait on each other.
type Coordinator struct {
	repo        repository.UnitRepository
	broadcaster service.UnitBroadcaster
	engine      *scoring.Engine
	locks       *keyedMutex
	workers     int
	now         func() time.Time
	logger      *slog.Logger
}

// NewCoordinator creates the recalculation coordinator
func NewCoordinator(params CoordinatorParams) *Coordinator {
	return newCoordinator(
		params.Repo,
		params.Broadcaster,
		params.Engine,
		params.Config.Recalculation.Workers,
		params.Logger,
		time.Now,
	)
}

func newCoordinator(
	repo repository.UnitRepository,
	broadcaster service.UnitBroadcaster,
	engine *scoring.Engine,
	workers int,
	logger *slog.Logger,
	now func() time.Time,
) *Coordinator {
	return &Coordinator{
		repo:        repo,
		broadcaster: broadcaster,
		engine:      engine,
		locks:       newKeyedMutex(),
		workers:     max(workers, 1),
		now:         now,
		logger:      logger.With(slog.String("component", "recalculation_coordinator")),
	}
}

// Create scores and stores a new unit, then publishes it.
func (c *Coordinator) Create(ctx context.Context, unit *entity.Unit) (*entity.Unit, error) {
	unlock := c.locks.Lock(unit.ID)
	defer unlock()

	now := c.now()
	unit.Version = 0
	unit.CreatedAt = now

	return c.commit(ctx, unit, now, "create unit")
}

// Mutate applies fn to the current state of unit id, rescores and stores the
// result, then publishes it. An error from fn aborts without writing.
func (c *Coordinator) Mutate(ctx context.Context, id uuid.UUID, fn func(unit *entity.Unit, now time.Time) error) (*entity.Unit, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	unit, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "get unit")
	}

	now := c.now()
	if err := fn(unit, now); err != nil {
		return nil, err
	}
	unit.ID = id

	return c.commit(ctx, unit, now, "update unit")
}

// Delete removes unit id and publishes exactly one deleted event.
func (c *Coordinator) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := c.locks.Lock(id)
	defer unlock()

	if err := c.repo.Delete(ctx, id); err != nil {
		return mapStoreError(err, "delete unit")
	}

	c.broadcaster.Publish(ctx, entity.NewDeletedEvent(id))

	return nil
}

// Recalculate rescores unit id and always publishes the stored result.
func (c *Coordinator) Recalculate(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	unit, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, "get unit")
	}

	return c.commit(ctx, unit, c.now(), "recalculate unit")
}

// RecalculateAll rescores every unit with bounded concurrency. Only units
// whose score, breakdown or fingerprint changed are stored and published.
// A failing unit is reported and never stops the others.
func (c *Coordinator) RecalculateAll(ctx context.Context) (*usecase.RecalculationReport, error) {
	started := c.now()

	units, err := c.repo.List(ctx, repository.UnitFilter{})
	if err != nil {
		return nil, mapStoreError(err, "list units")
	}

	report := &usecase.RecalculationReport{
		Total:  len(units),
		Failed: make(map[uuid.UUID]error),
	}
	var mu sync.Mutex

	group := new(errgroup.Group)
	group.SetLimit(c.workers)

	for _, listed := range units {
		id := listed.ID
		group.Go(func() error {
			changed, err := c.refresh(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, domainerrors.ErrUnitNotFound):
				report.Skipped++
			case err != nil:
				report.Failed[id] = err
			case changed:
				report.Updated++
			default:
				report.Unchanged++
			}

			return nil
		})
	}
	_ = group.Wait()

	report.Duration = c.now().Sub(started)

	c.logger.InfoContext(ctx, "Bulk recalculation finished",
		slog.Int("total", report.Total),
		slog.Int("updated", report.Updated),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", len(report.Failed)),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

// Evaluate scores unit against the current store without writing anything.
func (c *Coordinator) Evaluate(ctx context.Context, unit *entity.Unit) (scoring.Result, string, error) {
	market, err := c.marketFor(ctx, unit)
	if err != nil {
		return scoring.Result{}, "", err
	}

	now := c.now()

	return c.engine.Score(unit, market, now), c.engine.Fingerprint(unit, market, now), nil
}

// refresh is the bulk variant of Recalculate: it skips the write and the
// event when nothing changed.
func (c *Coordinator) refresh(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	unlock := c.locks.Lock(id)
	defer unlock()

	unit, err := c.repo.Get(ctx, id)
	if err != nil {
		return false, mapStoreError(err, "get unit")
	}

	now := c.now()
	market, err := c.marketFor(ctx, unit)
	if err != nil {
		return false, err
	}

	result := c.engine.Score(unit, market, now)
	fingerprint := c.engine.Fingerprint(unit, market, now)
	if unit.ScoredAt != nil &&
		unit.LeadScore == result.Total &&
		unit.ScoreFingerprint == fingerprint &&
		maps.Equal(unit.ScoreBreakdown, result.Breakdown) {
		return false, nil
	}

	if _, err := c.store(ctx, unit, result, fingerprint, now, "recalculate unit"); err != nil {
		return false, err
	}

	return true, nil
}

// commit scores unit, stores it and publishes the stored copy. Callers hold the unit lock.
func (c *Coordinator) commit(ctx context.Context, unit *entity.Unit, now time.Time, op string) (*entity.Unit, error) {
	market, err := c.marketFor(ctx, unit)
	if err != nil {
		return nil, err
	}

	result := c.engine.Score(unit, market, now)

	return c.store(ctx, unit, result, c.engine.Fingerprint(unit, market, now), now, op)
}

func (c *Coordinator) store(
	ctx context.Context,
	unit *entity.Unit,
	result scoring.Result,
	fingerprint string,
	now time.Time,
	op string,
) (*entity.Unit, error) {
	scoredAt := now
	unit.LeadScore = result.Total
	unit.ScoreBreakdown = result.Breakdown
	unit.ScoreFingerprint = fingerprint
	unit.ScoredAt = &scoredAt
	unit.Version++
	unit.UpdatedAt = now

	stored, err := c.repo.Put(ctx, unit)
	if err != nil {
		return nil, mapStoreError(err, op)
	}

	c.broadcaster.Publish(ctx, entity.NewUpdatedEvent(stored))

	return stored, nil
}

// marketFor loads the comparables of unit: available units sharing its
// bedroom count or its city.
func (c *Coordinator) marketFor(ctx context.Context, unit *entity.Unit) (scoring.MarketContext, error) {
	available := entity.UnitStatusAvailable
	bedrooms := unit.Bedrooms

	byBedrooms, err := c.repo.List(ctx, repository.UnitFilter{Status: &available, Bedrooms: &bedrooms})
	if err != nil {
		return scoring.MarketContext{}, mapStoreError(err, "load comparable units")
	}

	candidates := byBedrooms
	if unit.Location.City != "" {
		byCity, err := c.repo.List(ctx, repository.UnitFilter{Status: &available, City: unit.Location.City})
		if err != nil {
			return scoring.MarketContext{}, mapStoreError(err, "load comparable units")
		}
		candidates = mergeUnits(byBedrooms, byCity)
	}

	return scoring.BuildMarketContext(unit, candidates), nil
}

func mergeUnits(a, b []*entity.Unit) []*entity.Unit {
	seen := make(map[uuid.UUID]struct{}, len(a)+len(b))
	merged := make([]*entity.Unit, 0, len(a)+len(b))

	for _, list := range [][]*entity.Unit{a, b} {
		for _, unit := range list {
			if _, dup := seen[unit.ID]; dup {
				continue
			}
			seen[unit.ID] = struct{}{}
			merged = append(merged, unit)
		}
	}

	return merged
}
