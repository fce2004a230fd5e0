package iorepo

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
)

type ingredientRepo struct {
	op db.Operator
}

// NewIngredientRepo creates a pantry.IngredientRepo.
func NewIngredientRepo(op db.Operator) pantry.IngredientRepo {
	return &ingredientRepo{op: op}
}

func (r *ingredientRepo) List(
	ctx context.Context,
) ([]pantry.Ingredient, error) {
	q := "SELECT id, name FROM ingredients ORDER BY name"
	return list(ctx, r.op, scanIngredient, q)
}

// AddOrGet looks the name up first. If another writer inserts the same
// name between the lookup and the insert, the unique index rejects the
// insert and the lookup runs again.
func (r *ingredientRepo) AddOrGet(
	ctx context.Context,
	name string,
) (int64, error) {
	id, ok, err := r.find(ctx, name)
	if err != nil || ok {
		return id, err
	}

	q := "INSERT INTO ingredients (name) VALUES ($1) RETURNING id"
	id, err = insertID(ctx, r.op, "ingredient", q, name)
	if isDuplicate(err) {
		id, ok, err = r.find(ctx, name)
		if err == nil && !ok {
			err = NotFoundError("Ingredient", name)
		}
		return id, err
	}
	if err != nil {
		return 0, err
	}
	slog.Debug("added ingredient", "id", id, "name", name)
	return id, nil
}

func (r *ingredientRepo) find(
	ctx context.Context,
	name string,
) (int64, bool, error) {
	q := "SELECT id FROM ingredients WHERE name = $1"
	return first(ctx, r.op, scanID, q, name)
}

func scanIngredient(rows *sql.Rows) (pantry.Ingredient, error) {
	var res pantry.Ingredient
	err := rows.Scan(&res.ID, &res.Name)
	return res, err
}
