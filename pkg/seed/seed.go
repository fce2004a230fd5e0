// Package seed describes the YAML catalog that pantry imports with the
// seed command, and the Seeder that loads it into the database.
//
// A catalog lists countries, their foods, and the ingredients of every
// food:
//
//	countries:
//	  - name: Ghana
//	    foods:
//	      - name: Jollof Rice
//	        description: Spicy rice dish
//	        ingredients:
//	          - {name: Rice, quantity: 2, unit: cups}
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/pantry/pkg/validate"
	"gopkg.in/yaml.v3"
)

// Catalog is the content of a catalog file.
type Catalog struct {
	Countries []Country `yaml:"countries"`
}

// Country groups foods of one country.
type Country struct {
	Name  string `yaml:"name"`
	Foods []Food `yaml:"foods"`
}

// Food is a food with its ingredients.
type Food struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Ingredients []Ingredient `yaml:"ingredients,omitempty"`
}

// Ingredient is an ingredient line of a food. Unit is optional.
type Ingredient struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit,omitempty"`
}

// Summary counts what an import did.
type Summary struct {
	CountriesAdded  int
	CountriesReused int
	FoodsAdded      int
	FoodsSkipped    int
	Links           int
}

// String renders the summary for the user.
func (s Summary) String() string {
	return fmt.Sprintf(
		"Imported %s foods with %s ingredient links "+
			"(%s new countries, %s existing, %s foods already present)",
		humanize.Comma(int64(s.FoodsAdded)),
		humanize.Comma(int64(s.Links)),
		humanize.Comma(int64(s.CountriesAdded)),
		humanize.Comma(int64(s.CountriesReused)),
		humanize.Comma(int64(s.FoodsSkipped)),
	)
}

// Seeder imports catalogs.
type Seeder interface {
	// Import adds the countries, foods and ingredient links of the
	// catalog. Existing countries are reused and foods already present
	// in their country are skipped.
	Import(ctx context.Context, cat *Catalog) (Summary, error)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var res Catalog
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("cannot parse catalog: %w", err)
	}
	if err := res.Validate(validate.New()); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate checks every name and amount against the input policy, so
// a catalog cannot store what the interactive menus would refuse.
func (c *Catalog) Validate(v *validate.Validator) error {
	if len(c.Countries) == 0 {
		return errors.New("no countries in catalog")
	}

	for i, country := range c.Countries {
		err := v.Field(validate.CountryName, country.Name)
		if err != nil {
			return fmt.Errorf("country %d: %s", i+1, validate.Message(err))
		}
		seen := make(map[string]struct{}, len(country.Foods))
		for j, food := range country.Foods {
			if err = food.validate(v); err != nil {
				return fmt.Errorf("country %q, food %d: %w", country.Name, j+1, err)
			}
			if _, ok := seen[food.Name]; ok {
				return fmt.Errorf("country %q: food %q is listed twice",
					country.Name, food.Name)
			}
			seen[food.Name] = struct{}{}
		}
	}
	return nil
}

func (f Food) validate(v *validate.Validator) error {
	if err := v.Field(validate.FoodName, f.Name); err != nil {
		return errors.New(validate.Message(err))
	}
	if err := v.Field(validate.Description, f.Description); err != nil {
		return errors.New(validate.Message(err))
	}

	seen := make(map[string]struct{}, len(f.Ingredients))
	for i, ing := range f.Ingredients {
		checks := []error{
			v.Field(validate.IngredientName, ing.Name),
			v.Amount(ing.Quantity),
			v.Field(validate.Unit, ing.Unit),
		}
		for _, err := range checks {
			if err != nil {
				return fmt.Errorf("ingredient %d: %s", i+1, validate.Message(err))
			}
		}
		if _, ok := seen[ing.Name]; ok {
			return fmt.Errorf("ingredient %q is listed twice", ing.Name)
		}
		seen[ing.Name] = struct{}{}
	}
	return nil
}
