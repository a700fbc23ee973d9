// Package gormcustom applies custom query results to gorm statements.
package gormcustom

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theplant/customquery"
)

var SELECT = clause.Select{}.Name()

// Scope adds the select entries, the joins and the where clause of result.
// The statement must already name the host table under the host alias.
func Scope(result *customquery.Result) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db == nil {
			return nil
		}
		if result == nil {
			db.AddError(errors.New("custom query result is nil"))
			return db
		}
		db = db.Scopes(
			AppendSelect(lo.Map(result.Select, func(s string, _ int) clause.Column {
				return clause.Column{Name: s, Raw: true}
			})...),
			joins(result.Tables),
		)
		return where(db, result)
	}
}

// WhereScope adds only the joins the where clause depends on and the where
// clause itself, which is enough to count matching hosts.
func WhereScope(result *customquery.Result) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if db == nil {
			return nil
		}
		if result == nil {
			db.AddError(errors.New("custom query result is nil"))
			return db
		}
		return where(joins(result.WhereTables)(db), result)
	}
}

func joins(j *customquery.Joins) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if j == nil {
			return db
		}
		for _, c := range j.Clauses() {
			db = db.Joins(c)
		}
		return db
	}
}

func where(db *gorm.DB, result *customquery.Result) *gorm.DB {
	if result.Where == "" {
		return db
	}
	return db.Where(clause.Expr{SQL: result.Where})
}

// AppendSelect appends columns to the select clause, keeping "*" when the
// statement selects nothing else.
func AppendSelect(columns ...clause.Column) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(columns) == 0 {
			return db
		}
		clauseSelect, ok := db.Statement.Clauses[SELECT]
		if !ok {
			clauseSelect = clause.Clause{Name: SELECT}
		}
		oldBuilder := clauseSelect.Builder
		clauseSelect.Builder = func(c clause.Clause, builder clause.Builder) {
			if exprSelect, ok := c.Expression.(clause.Select); ok {
				if len(exprSelect.Columns) == 0 {
					exprSelect.Columns = make([]clause.Column, 0, len(columns)+1)
					exprSelect.Columns = append(exprSelect.Columns, clause.Column{
						Name: "*",
						Raw:  true,
					})
				}
				exprSelect.Columns = append(exprSelect.Columns, columns...)
				c.Expression = exprSelect
			}

			if oldBuilder != nil {
				oldBuilder(c, builder)
			} else {
				c.Builder = nil
				c.Build(builder)
			}
		}
		db.Statement.Clauses[SELECT] = clauseSelect
		return db
	}
}
