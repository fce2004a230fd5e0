// Package schema provides the database schema models for pantry.
// GORM's default naming strategy maps them to the tables countries,
// foods, ingredients, food_ingredients, recipes, recipe_ingredients
// and users.
package schema

// Country is a place foods and recipes come from.
type Country struct {
	ID int64 `gorm:"primaryKey"`

	// Name is unique across all countries.
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (Country) TableName() string { return "countries" }

// Food is a dish, optionally tied to a country.
type Food struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	CountryID   *int64 `gorm:"index"`
	Description string `gorm:"type:text"`
}

func (Food) TableName() string { return "foods" }

// Ingredient names are unique by exact, case-sensitive value.
type Ingredient struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (Ingredient) TableName() string { return "ingredients" }

// FoodIngredient links a food to an ingredient with an amount.
type FoodIngredient struct {
	FoodID       int64   `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64   `gorm:"primaryKey;autoIncrement:false"`
	Quantity     float64 `gorm:"type:double precision"`
	Unit         string  `gorm:"type:varchar(30)"`
}

func (FoodIngredient) TableName() string { return "food_ingredients" }

// Recipe is a user's way of cooking something.
type Recipe struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	CountryID    *int64 `gorm:"index"`
	Instructions string `gorm:"type:text;not null"`
	PrepTime     string `gorm:"type:varchar(50)"`
	CookTime     string `gorm:"type:varchar(50)"`
	Servings     *int
	FamilyNotes  string `gorm:"type:text"`

	// UserID is the owner, the only user allowed to delete the recipe.
	UserID *int64 `gorm:"index"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient links a recipe to an ingredient with an amount.
type RecipeIngredient struct {
	RecipeID     int64   `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64   `gorm:"primaryKey;autoIncrement:false"`
	Quantity     float64 `gorm:"type:double precision"`
	Unit         string  `gorm:"type:varchar(30)"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// User is an account that can log in and own recipes.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	UserName string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(255)"`

	// PasswordHash keeps a bcrypt hash in the password column.
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`

	CountryID *int64
}

func (User) TableName() string { return "users" }
