// Package pantry defines the domain of the pantry application: countries,
// foods, ingredients, recipes and users, the repository contracts that
// persist them, and the Session that identifies the acting user.
package pantry

// Country is a place of origin for foods, recipes and users.
type Country struct {
	ID   int64
	Name string
}

// Ingredient is a named component of foods and recipes.
type Ingredient struct {
	ID   int64
	Name string
}

// IngredientLine is an ingredient together with its amount in a food
// or a recipe.
type IngredientLine struct {
	Name     string
	Quantity float64
	Unit     string
}

// Food is a row of the foods listing. Country is empty when the food
// has no country.
type Food struct {
	ID          int64
	Name        string
	Country     string
	Description string
}

// FoodDetails is a food with its ingredients. Ingredients is empty,
// never nil, when none are attached.
type FoodDetails struct {
	Food
	Ingredients []IngredientLine
}

// NewFood holds the fields needed to add a food.
type NewFood struct {
	Name        string
	CountryID   *int64
	Description string
}

// Recipe is a row of the recipes listing.
type Recipe struct {
	ID       int64
	Name     string
	Country  string
	PrepTime string
	CookTime string
	Servings *int

	// UserID is the owner of the recipe, nil for recipes without one.
	UserID *int64
}

// RecipeDetails is a recipe with its full text and ingredients.
type RecipeDetails struct {
	Recipe
	Instructions string
	FamilyNotes  string
	Ingredients  []IngredientLine
}

// NewRecipe holds the fields needed to add a recipe. The owner comes
// from the acting session.
type NewRecipe struct {
	Name         string
	CountryID    *int64
	Instructions string
	PrepTime     string
	CookTime     string
	Servings     *int
	FamilyNotes  string
}

// User is an account. The password hash never leaves the repository.
type User struct {
	ID        int64
	UserName  string
	Email     string
	CountryID *int64
}

// NewUser holds registration data. Password is the plain text typed by
// the user; it is hashed before storage.
type NewUser struct {
	UserName  string
	Email     string
	Password  string
	CountryID *int64
}
