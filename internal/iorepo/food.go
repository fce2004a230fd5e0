package iorepo

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
)

const foodColumns = `
	SELECT f.id, f.name, COALESCE(c.name, ''), COALESCE(f.description, '')
	FROM foods f
	LEFT JOIN countries c ON c.id = f.country_id`

type foodRepo struct {
	op db.Operator
}

// NewFoodRepo creates a pantry.FoodRepo.
func NewFoodRepo(op db.Operator) pantry.FoodRepo {
	return &foodRepo{op: op}
}

func (r *foodRepo) List(ctx context.Context) ([]pantry.Food, error) {
	q := foodColumns + " ORDER BY f.name, f.id"
	return list(ctx, r.op, scanFood, q)
}

func (r *foodRepo) ListByCountry(
	ctx context.Context,
	countryID int64,
) ([]pantry.Food, error) {
	q := foodColumns + " WHERE f.country_id = $1 ORDER BY f.name, f.id"
	return list(ctx, r.op, scanFood, q, countryID)
}

func (r *foodRepo) Add(
	ctx context.Context,
	food pantry.NewFood,
) (int64, error) {
	q := `INSERT INTO foods (name, country_id, description)
		VALUES ($1, $2, $3) RETURNING id`
	id, err := insertID(ctx, r.op, "food", q,
		food.Name, nullInt64(food.CountryID), nullString(food.Description))
	if err != nil {
		return 0, err
	}
	slog.Debug("added food", "id", id, "name", food.Name)
	return id, nil
}

// Get reads the food row first, then its ingredient lines.
func (r *foodRepo) Get(
	ctx context.Context,
	id int64,
) (pantry.FoodDetails, error) {
	res := pantry.FoodDetails{Ingredients: []pantry.IngredientLine{}}

	q := foodColumns + " WHERE f.id = $1"
	food, ok, err := first(ctx, r.op, scanFood, q, id)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, NotFoundError("Food", id)
	}
	res.Food = food

	q = `SELECT i.name, COALESCE(fi.quantity, 0), COALESCE(fi.unit, '')
		FROM food_ingredients fi
		JOIN ingredients i ON i.id = fi.ingredient_id
		WHERE fi.food_id = $1
		ORDER BY i.name`
	lines, err := list(ctx, r.op, scanLine, q, id)
	if err != nil {
		return res, err
	}
	res.Ingredients = lines
	return res, nil
}

func (r *foodRepo) AttachIngredient(
	ctx context.Context,
	foodID, ingredientID int64,
	quantity float64,
	unit string,
) error {
	q := `INSERT INTO food_ingredients (food_id, ingredient_id, quantity, unit)
		VALUES ($1, $2, $3, $4)`
	_, err := r.op.Exec(ctx, q, foodID, ingredientID, quantity, nullString(unit))
	if isDuplicate(err) {
		return DuplicateError("Food ingredient", ingredientID, err)
	}
	return err
}

func scanFood(rows *sql.Rows) (pantry.Food, error) {
	var res pantry.Food
	err := rows.Scan(&res.ID, &res.Name, &res.Country, &res.Description)
	return res, err
}
