package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/helixml/antigone/domain/repository"
	"gorm.io/gorm"
)

// ErrNotFound indicates the requested entity was not found.
var ErrNotFound = errors.New("entity not found")

// EntityMapper maps database models to domain values.
type EntityMapper[D any, E any] interface {
	ToDomain(entity E) D
}

// Repository provides generic read operations for database entities
// using repository.Option-based queries.
type Repository[D any, E any] struct {
	db     Database
	mapper EntityMapper[D, E]
	label  string
}

// NewRepository creates a new Repository.
func NewRepository[D any, E any](db Database, mapper EntityMapper[D, E], label string) Repository[D, E] {
	return Repository[D, E]{
		db:     db,
		mapper: mapper,
		label:  label,
	}
}

// Find retrieves entities matching the given options.
func (r Repository[D, E]) Find(ctx context.Context, options ...repository.Option) ([]D, error) {
	var entities []E
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	if err := db.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find %s: %w", r.label, err)
	}

	domains := make([]D, len(entities))
	for i, entity := range entities {
		domains[i] = r.mapper.ToDomain(entity)
	}
	return domains, nil
}

// FindOne retrieves a single entity matching the given options.
func (r Repository[D, E]) FindOne(ctx context.Context, options ...repository.Option) (D, error) {
	var entity E
	var zero D
	db := ApplyOptions(r.db.Session(ctx), options...)
	if err := db.Take(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.label)
		}
		return zero, fmt.Errorf("find one %s: %w", r.label, err)
	}
	return r.mapper.ToDomain(entity), nil
}

// Count returns the number of entities matching the given options.
func (r Repository[D, E]) Count(ctx context.Context, options ...repository.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.db.Session(ctx).Model(new(E)), options...)
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.label, err)
	}
	return count, nil
}

// Distinct returns the distinct values of column among matching entities,
// in the order given by options. column must not be NULL in any matching
// row; filter with repository.WithConditionNotEmpty where it can be.
func (r Repository[D, E]) Distinct(ctx context.Context, column string, options ...repository.Option) ([]string, error) {
	var values []string
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	if err := db.Distinct().Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("distinct %s.%s: %w", r.label, column, err)
	}
	return values, nil
}

// DB returns a GORM session scoped to the entity model.
func (r Repository[D, E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx).Model(new(E))
}
