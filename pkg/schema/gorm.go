package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Country{},
		&Food{},
		&Ingredient{},
		&FoodIngredient{},
		&Recipe{},
		&RecipeIngredient{},
		&User{},
	}
}

// TableNames lists the tables created by Migrate.
func TableNames() []string {
	models := AllModels()
	res := make([]string, 0, len(models))
	for _, v := range models {
		if t, ok := v.(interface{ TableName() string }); ok {
			res = append(res, t.TableName())
		}
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
// It is idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
