package schema_test

import (
	"sync"
	"testing"

	"github.com/gnames/pantry/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gschema "gorm.io/gorm/schema"
)

func TestTableNames(t *testing.T) {
	res := schema.TableNames()
	assert.Equal(t, []string{
		"countries", "foods", "ingredients", "food_ingredients",
		"recipes", "recipe_ingredients", "users",
	}, res)
}

func TestColumns(t *testing.T) {
	tests := []struct {
		msg     string
		model   any
		table   string
		columns []string
		pk      []string
	}{
		{
			msg:     "countries",
			model:   &schema.Country{},
			table:   "countries",
			columns: []string{"id", "name"},
			pk:      []string{"id"},
		},
		{
			msg:     "foods",
			model:   &schema.Food{},
			table:   "foods",
			columns: []string{"id", "name", "country_id", "description"},
			pk:      []string{"id"},
		},
		{
			msg:     "food ingredients",
			model:   &schema.FoodIngredient{},
			table:   "food_ingredients",
			columns: []string{"food_id", "ingredient_id", "quantity", "unit"},
			pk:      []string{"food_id", "ingredient_id"},
		},
		{
			msg:   "recipes",
			model: &schema.Recipe{},
			table: "recipes",
			columns: []string{"id", "name", "country_id", "instructions",
				"prep_time", "cook_time", "servings", "family_notes", "user_id"},
			pk: []string{"id"},
		},
		{
			msg:     "recipe ingredients",
			model:   &schema.RecipeIngredient{},
			table:   "recipe_ingredients",
			columns: []string{"recipe_id", "ingredient_id", "quantity", "unit"},
			pk:      []string{"recipe_id", "ingredient_id"},
		},
		{
			msg:     "users",
			model:   &schema.User{},
			table:   "users",
			columns: []string{"id", "user_name", "email", "password", "country_id"},
			pk:      []string{"id"},
		},
	}

	cache := &sync.Map{}
	for _, v := range tests {
		s, err := gschema.Parse(v.model, cache, gschema.NamingStrategy{})
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.table, s.Table, v.msg)
		assert.Equal(t, v.columns, s.DBNames, v.msg)
		assert.Equal(t, v.pk, s.PrimaryFieldDBNames, v.msg)
	}
}
