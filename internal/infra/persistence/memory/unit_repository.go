// Package memory is the in-process unit store used by default and in tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"

	"github.com/google/uuid"
)

type unitRepository struct {
	mu    sync.RWMutex
	units map[uuid.UUID]*entity.Unit
}

// NewUnitRepository returns an empty in-memory unit store.
func NewUnitRepository() repository.UnitRepository {
	return &unitRepository{units: make(map[uuid.UUID]*entity.Unit)}
}

func (r *unitRepository) Get(_ context.Context, id uuid.UUID) (*entity.Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[id]
	if !ok {
		return nil, repository.ErrUnitNotFound
	}

	return unit.Clone(), nil
}

func (r *unitRepository) Put(_ context.Context, unit *entity.Unit) (*entity.Unit, error) {
	stored := unit.Clone()

	r.mu.Lock()
	r.units[stored.ID] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

func (r *unitRepository) List(_ context.Context, filter repository.UnitFilter) ([]*entity.Unit, error) {
	matched := r.match(filter)
	sortUnits(matched, filter.OrderByScore)

	start := min(max(filter.Offset, 0), len(matched))
	end := len(matched)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, end)
	}

	result := make([]*entity.Unit, 0, end-start)
	for _, unit := range matched[start:end] {
		result = append(result, unit.Clone())
	}

	return result, nil
}

func (r *unitRepository) Count(_ context.Context, filter repository.UnitFilter) (int64, error) {
	return int64(len(r.match(filter))), nil
}

func (r *unitRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.units[id]; !ok {
		return repository.ErrUnitNotFound
	}
	delete(r.units, id)

	return nil
}

func (r *unitRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// match returns the stored pointers that pass filter. Callers must clone before handing them out.
func (r *unitRepository) match(filter repository.UnitFilter) []*entity.Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entity.Unit, 0, len(r.units))
	for _, unit := range r.units {
		if filter.Matches(unit) {
			matched = append(matched, unit)
		}
	}

	return matched
}

func sortUnits(units []*entity.Unit, byScore bool) {
	slices.SortFunc(units, func(a, b *entity.Unit) int {
		if byScore {
			if c := cmp.Compare(b.LeadScore, a.LeadScore); c != 0 {
				return c
			}
		}
		if c := a.DateListed.Compare(b.DateListed); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}
