package pantry

import "context"

// CountryRepo persists countries.
type CountryRepo interface {
	// List returns all countries ordered by name.
	List(ctx context.Context) ([]Country, error)

	// Add inserts a country. A duplicate name is a
	// ConstraintViolationError.
	Add(ctx context.Context, name string) (Country, error)

	// FindByName returns the country with the exact name or a
	// NotFoundError.
	FindByName(ctx context.Context, name string) (Country, error)
}

// FoodRepo persists foods and their ingredient links.
type FoodRepo interface {
	// List returns all foods with their country names, ordered by name.
	List(ctx context.Context) ([]Food, error)

	// ListByCountry returns foods of one country ordered by name.
	ListByCountry(ctx context.Context, countryID int64) ([]Food, error)

	// Add inserts a food and returns its id.
	Add(ctx context.Context, food NewFood) (int64, error)

	// Get returns a food with its ingredients or a NotFoundError.
	Get(ctx context.Context, id int64) (FoodDetails, error)

	// AttachIngredient links an ingredient to a food.
	AttachIngredient(
		ctx context.Context,
		foodID, ingredientID int64,
		quantity float64,
		unit string,
	) error
}

// IngredientRepo persists ingredients.
type IngredientRepo interface {
	// List returns all ingredients ordered by name.
	List(ctx context.Context) ([]Ingredient, error)

	// AddOrGet returns the id of the ingredient with the exact name,
	// creating it when it does not exist.
	AddOrGet(ctx context.Context, name string) (int64, error)
}

// RecipeRepo persists recipes and their ingredient links.
type RecipeRepo interface {
	// List returns all recipes with their country names, ordered by name.
	List(ctx context.Context) ([]Recipe, error)

	// ListByUser returns the recipes owned by a user.
	ListByUser(ctx context.Context, userID int64) ([]Recipe, error)

	// Add inserts a recipe owned by the actor and returns its id.
	Add(ctx context.Context, actor Actor, recipe NewRecipe) (int64, error)

	// Get returns a recipe with its ingredients or a NotFoundError.
	Get(ctx context.Context, id int64) (RecipeDetails, error)

	// Delete removes a recipe owned by the actor. It returns
	// NotFoundError when the recipe does not exist and
	// PermissionDeniedError when it belongs to someone else.
	Delete(ctx context.Context, actor Actor, id int64) error

	// AttachIngredient links an ingredient to a recipe. A repeated link
	// is a ConstraintViolationError.
	AttachIngredient(
		ctx context.Context,
		recipeID, ingredientID int64,
		quantity float64,
		unit string,
	) error
}

// UserRepo persists accounts.
type UserRepo interface {
	// Authenticate checks the credentials and returns the user. Wrong
	// user name and wrong password give the same AuthenticationError.
	Authenticate(ctx context.Context, userName, password string) (User, error)

	// Register creates an account. A taken user name is a
	// ConstraintViolationError.
	Register(ctx context.Context, user NewUser) (User, error)
}

// Store bundles the repositories the application works with.
type Store struct {
	Countries   CountryRepo
	Foods       FoodRepo
	Ingredients IngredientRepo
	Recipes     RecipeRepo
	Users       UserRepo
}
