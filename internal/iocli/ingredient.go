package iocli

import (
	"context"

	"github.com/gnames/pantry/pkg/validate"
)

func (c *CLI) viewIngredients(ctx context.Context) error {
	ingredients, err := c.store.Ingredients.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.out.Ingredients(ingredients)
	return nil
}

func (c *CLI) addIngredient(ctx context.Context) error {
	c.out.Heading("ADD NEW INGREDIENT", 40)
	name, err := c.field(ctx, "Enter ingredient name: ", validate.IngredientName)
	if err != nil {
		return err
	}

	if _, err = c.store.Ingredients.AddOrGet(ctx, name); err != nil {
		c.report(err)
		return nil
	}
	c.out.Success("Ingredient '%s' added successfully!", name)
	return nil
}
