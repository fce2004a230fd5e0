// Package iorepo implements the pantry repositories with fixed,
// parameterized SQL statements executed through db.Operator.
// The statements use $N placeholders and RETURNING, which work
// for both PostgreSQL and SQLite.
package iorepo

import (
	"context"
	"database/sql"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/pantry"
)

// New creates all repositories on top of one operator.
func New(op db.Operator) *pantry.Store {
	return &pantry.Store{
		Countries:   NewCountryRepo(op),
		Foods:       NewFoodRepo(op),
		Ingredients: NewIngredientRepo(op),
		Recipes:     NewRecipeRepo(op),
		Users:       NewUserRepo(op),
	}
}

// list collects one item per row. On failure it returns an empty,
// non-nil slice together with the error.
func list[T any](
	ctx context.Context,
	op db.Operator,
	scanRow func(*sql.Rows) (T, error),
	query string,
	args ...any,
) ([]T, error) {
	var res []T
	err := op.Query(ctx, func(rows *sql.Rows) error {
		res = make([]T, 0)
		for rows.Next() {
			item, err := scanRow(rows)
			if err != nil {
				return err
			}
			res = append(res, item)
		}
		return nil
	}, query, args...)
	if err != nil || res == nil {
		return []T{}, err
	}
	return res, nil
}

// first returns the first row, false if there is none.
func first[T any](
	ctx context.Context,
	op db.Operator,
	scanRow func(*sql.Rows) (T, error),
	query string,
	args ...any,
) (T, bool, error) {
	var zero T
	res, err := list(ctx, op, scanRow, query, args...)
	if err != nil || len(res) == 0 {
		return zero, false, err
	}
	return res[0], true, nil
}

// insertID runs an INSERT ... RETURNING id statement.
func insertID(
	ctx context.Context,
	op db.Operator,
	entity string,
	query string,
	args ...any,
) (int64, error) {
	id, ok, err := first(ctx, op, scanID, query, args...)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, NoIDError(entity)
	}
	return id, nil
}

func scanID(rows *sql.Rows) (int64, error) {
	var id int64
	err := rows.Scan(&id)
	return id, err
}

func scanLine(rows *sql.Rows) (pantry.IngredientLine, error) {
	var res pantry.IngredientLine
	err := rows.Scan(&res.Name, &res.Quantity, &res.Unit)
	return res, err
}

func isDuplicate(err error) bool {
	return errcode.Is(err, errcode.ConstraintViolationError)
}

// nullString stores empty optional text as NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
