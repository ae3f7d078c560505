// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"leasing/internal/domain/entity"
	"leasing/internal/domain/repository"
	"leasing/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// unitRepository implements repository.UnitRepository on the 'units' table.
type unitRepository struct {
	q *query.Query
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{
		q: query.Use(db),
	}
}

// Get retrieves a unit by its ID.
func (repo *unitRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unitM, err := repo.q.UnitModel.WithContext(ctx).
		Where(repo.q.UnitModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by ID")
	}

	return toUnitDomain(unitM), nil
}

// Put inserts the unit or replaces every column of the existing row.
func (repo *unitRepository) Put(ctx context.Context, unit *entity.Unit) (*entity.Unit, error) {
	unitM := fromUnitDomain(unit)

	// Save upserts on the primary key.
	if err := repo.q.UnitModel.WithContext(ctx).Save(unitM); err != nil {
		return nil, errors.Wrap(err, "failed to upsert unit")
	}

	return toUnitDomain(unitM), nil
}

// List returns the units matching filter. A radius filter is applied as a
// bounding box in SQL and refined in memory, so paging happens after refinement.
func (repo *unitRepository) List(ctx context.Context, filter repository.UnitFilter) ([]*entity.Unit, error) {
	do := repo.q.UnitModel.WithContext(ctx).
		Where(repo.filterConditions(filter)...).
		Order(repo.orderColumns(filter.OrderByScore)...)
	if filter.Near == nil {
		if filter.Offset > 0 {
			do = do.Offset(filter.Offset)
		}
		if filter.Limit > 0 {
			do = do.Limit(filter.Limit)
		}
	}

	unitModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units")
	}

	units := make([]*entity.Unit, 0, len(unitModels))
	for _, unitM := range unitModels {
		unit := toUnitDomain(unitM)
		if filter.Near != nil && !filter.Matches(unit) {
			continue
		}
		units = append(units, unit)
	}

	if filter.Near != nil {
		units = pageSlice(units, filter.Offset, filter.Limit)
	}

	return units, nil
}

// Count returns the number of units matching filter.
func (repo *unitRepository) Count(ctx context.Context, filter repository.UnitFilter) (int64, error) {
	if filter.Near != nil {
		units, err := repo.List(ctx, filter.Unpaged())
		if err != nil {
			return 0, err
		}

		return int64(len(units)), nil
	}

	total, err := repo.q.UnitModel.WithContext(ctx).
		Where(repo.filterConditions(filter)...).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count units")
	}

	return total, nil
}

// Delete removes a unit by its ID.
func (repo *unitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	info, err := repo.q.UnitModel.WithContext(ctx).
		Where(repo.q.UnitModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete unit")
	}
	if info.RowsAffected == 0 {
		return repository.ErrUnitNotFound
	}

	return nil
}

// Ping checks the database connection.
func (repo *unitRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.q.UnitModel.WithContext(ctx).UnderlyingDB().DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

// filterConditions translates the SQL-expressible part of filter.
func (repo *unitRepository) filterConditions(filter repository.UnitFilter) []gen.Condition {
	u := repo.q.UnitModel

	var conds []gen.Condition
	if filter.Status != nil {
		conds = append(conds, u.Status.Eq(string(*filter.Status)))
	}
	if filter.Bedrooms != nil {
		conds = append(conds, u.Bedrooms.Eq(*filter.Bedrooms))
	}
	if filter.PriceMin != nil {
		conds = append(conds, u.Price.Gte(*filter.PriceMin))
	}
	if filter.PriceMax != nil {
		conds = append(conds, u.Price.Lte(*filter.PriceMax))
	}
	if filter.City != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.City)) + "%"
		conds = append(conds, u.City.Lower().Like(pattern))
	}
	if filter.Near != nil {
		bound := filter.Near.Bound()
		conds = append(conds,
			field.Or(u.Latitude.Neq(0), u.Longitude.Neq(0)),
			u.Latitude.Between(bound.Min.Lat(), bound.Max.Lat()),
			u.Longitude.Between(bound.Min.Lon(), bound.Max.Lon()),
		)
	}

	return conds
}

func (repo *unitRepository) orderColumns(byScore bool) []field.Expr {
	u := repo.q.UnitModel

	columns := make([]field.Expr, 0, 3)
	if byScore {
		columns = append(columns, u.LeadScore.Desc())
	}

	return append(columns, u.DateListed, u.ID)
}

func pageSlice(units []*entity.Unit, offset, limit int) []*entity.Unit {
	start := min(max(offset, 0), len(units))
	end := len(units)
	if limit > 0 {
		end = min(start+limit, end)
	}

	return units[start:end]
}

// Postgres treats backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
