package database

import (
	"fmt"

	"github.com/helixml/antigone/domain/repository"
	"gorm.io/gorm"
)

// ApplyOptions builds a repository.Query from the given options and applies
// it to a GORM session.
func ApplyOptions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	q := repository.Build(options...)

	db = applyConditions(db, q)

	for _, ord := range q.Orders() {
		dir := "ASC"
		if !ord.Ascending() {
			dir = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", ord.Field(), dir))
	}

	if q.LimitValue() > 0 {
		db = db.Limit(q.LimitValue())
	}

	return db
}

// ApplyConditions applies only WHERE conditions (no limit or order) for COUNT queries.
func ApplyConditions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	return applyConditions(db, repository.Build(options...))
}

func applyConditions(db *gorm.DB, q repository.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		switch cond.Operator() {
		case repository.OpIn:
			db = db.Where(fmt.Sprintf("%s IN ?", cond.Field()), cond.Value())
		case repository.OpBetween:
			db = db.Where(fmt.Sprintf("%s BETWEEN ? AND ?", cond.Field()), cond.Value(), cond.Upper())
		case repository.OpNotEmpty:
			db = db.Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", cond.Field(), cond.Field()))
		default:
			db = db.Where(fmt.Sprintf("%s = ?", cond.Field()), cond.Value())
		}
	}
	return db
}
