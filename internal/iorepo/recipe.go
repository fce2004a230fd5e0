package iorepo

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
)

const recipeColumns = `
	SELECT r.id, r.name, COALESCE(c.name, ''),
		COALESCE(r.prep_time, ''), COALESCE(r.cook_time, ''),
		r.servings, r.user_id`

const recipeFrom = `
	FROM recipes r
	LEFT JOIN countries c ON c.id = r.country_id`

type recipeRepo struct {
	op db.Operator
}

// NewRecipeRepo creates a pantry.RecipeRepo.
func NewRecipeRepo(op db.Operator) pantry.RecipeRepo {
	return &recipeRepo{op: op}
}

func (r *recipeRepo) List(ctx context.Context) ([]pantry.Recipe, error) {
	q := recipeColumns + recipeFrom + " ORDER BY r.name, r.id"
	return list(ctx, r.op, scanRecipe, q)
}

func (r *recipeRepo) ListByUser(
	ctx context.Context,
	userID int64,
) ([]pantry.Recipe, error) {
	q := recipeColumns + recipeFrom +
		" WHERE r.user_id = $1 ORDER BY r.name, r.id"
	return list(ctx, r.op, scanRecipe, q, userID)
}

func (r *recipeRepo) Add(
	ctx context.Context,
	actor pantry.Actor,
	recipe pantry.NewRecipe,
) (int64, error) {
	var owner *int64
	if uid, ok := actor.UserID(); ok {
		owner = &uid
	}

	q := `INSERT INTO recipes
		(name, country_id, instructions, prep_time, cook_time,
		 servings, family_notes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	id, err := insertID(ctx, r.op, "recipe", q,
		recipe.Name,
		nullInt64(recipe.CountryID),
		recipe.Instructions,
		nullString(recipe.PrepTime),
		nullString(recipe.CookTime),
		nullInt(recipe.Servings),
		nullString(recipe.FamilyNotes),
		nullInt64(owner),
	)
	if err != nil {
		return 0, err
	}
	slog.Debug("added recipe", "id", id, "name", recipe.Name)
	return id, nil
}

func (r *recipeRepo) Get(
	ctx context.Context,
	id int64,
) (pantry.RecipeDetails, error) {
	res := pantry.RecipeDetails{Ingredients: []pantry.IngredientLine{}}

	q := recipeColumns +
		", r.instructions, COALESCE(r.family_notes, '')" +
		recipeFrom + " WHERE r.id = $1"
	rec, ok, err := first(ctx, r.op, scanRecipeDetails, q, id)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, NotFoundError("Recipe", id)
	}
	res = rec

	q = `SELECT i.name, COALESCE(ri.quantity, 0), COALESCE(ri.unit, '')
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = $1
		ORDER BY i.name`
	lines, err := list(ctx, r.op, scanLine, q, id)
	if err != nil {
		return res, err
	}
	res.Ingredients = lines
	return res, nil
}

// Delete removes the recipe only when the actor owns it. When nothing
// was deleted, a second lookup tells a missing recipe from a foreign one.
func (r *recipeRepo) Delete(
	ctx context.Context,
	actor pantry.Actor,
	id int64,
) error {
	uid, ok := actor.UserID()
	if ok {
		// links go first, so a failed run leaves the recipe to retry
		q := `DELETE FROM recipe_ingredients
			WHERE recipe_id = $1 AND EXISTS
			(SELECT 1 FROM recipes WHERE id = $1 AND user_id = $2)`
		if _, err := r.op.Exec(ctx, q, id, uid); err != nil {
			return err
		}
		q = "DELETE FROM recipes WHERE id = $1 AND user_id = $2"
		n, err := r.op.Exec(ctx, q, id, uid)
		if err != nil {
			return err
		}
		if n > 0 {
			slog.Debug("deleted recipe", "id", id, "user_id", uid)
			return nil
		}
	}

	q := "SELECT id FROM recipes WHERE id = $1"
	_, exists, err := first(ctx, r.op, scanID, q, id)
	if err != nil {
		return err
	}
	if !exists {
		return NotFoundError("Recipe", id)
	}
	slog.Warn("refused to delete recipe of another user", "id", id)
	return PermissionDeniedError(id)
}

func (r *recipeRepo) AttachIngredient(
	ctx context.Context,
	recipeID, ingredientID int64,
	quantity float64,
	unit string,
) error {
	q := `INSERT INTO recipe_ingredients
		(recipe_id, ingredient_id, quantity, unit)
		VALUES ($1, $2, $3, $4)`
	_, err := r.op.Exec(ctx, q, recipeID, ingredientID, quantity, nullString(unit))
	if isDuplicate(err) {
		return DuplicateError("Recipe ingredient", ingredientID, err)
	}
	return err
}

func scanRecipe(rows *sql.Rows) (pantry.Recipe, error) {
	var res pantry.Recipe
	var servings, userID sql.NullInt64
	err := rows.Scan(&res.ID, &res.Name, &res.Country,
		&res.PrepTime, &res.CookTime, &servings, &userID)
	res.Servings = intPtr(servings)
	res.UserID = int64Ptr(userID)
	return res, err
}

func scanRecipeDetails(rows *sql.Rows) (pantry.RecipeDetails, error) {
	var res pantry.RecipeDetails
	var servings, userID sql.NullInt64
	err := rows.Scan(&res.ID, &res.Name, &res.Country,
		&res.PrepTime, &res.CookTime, &servings, &userID,
		&res.Instructions, &res.FamilyNotes)
	res.Servings = intPtr(servings)
	res.UserID = int64Ptr(userID)
	res.Ingredients = []pantry.IngredientLine{}
	return res, err
}
