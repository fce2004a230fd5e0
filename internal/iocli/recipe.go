package iocli

import (
	"context"
	"strings"

	"github.com/gnames/pantry/pkg/display"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/gnames/pantry/pkg/validate"
)

func (c *CLI) viewRecipes(ctx context.Context) error {
	recipes, err := c.store.Recipes.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.out.Recipes("All Recipes", recipes)
	return nil
}

func (c *CLI) recipeDetails(ctx context.Context) error {
	if err := c.viewRecipes(ctx); err != nil {
		return err
	}

	id, ok, err := c.askID(ctx,
		"\nEnter recipe ID to view details (or 'back' to return): ",
		"Please enter a valid numeric recipe ID.",
	)
	if err != nil || !ok {
		return err
	}

	r, err := c.store.Recipes.Get(ctx, id)
	switch {
	case errcode.Is(err, errcode.NotFoundError):
		c.out.Failure("Recipe not found.")
	case err != nil:
		c.report(err)
	default:
		c.out.RecipeDetails(r)
	}
	return nil
}

func (c *CLI) addRecipe(ctx context.Context) error {
	var rec pantry.NewRecipe
	var err error
	var ok bool

	c.out.Heading("ADD NEW RECIPE", 40)
	if rec.Name, err = c.field(ctx,
		"Enter recipe name: ", validate.RecipeName); err != nil {
		return err
	}
	if rec.CountryID, ok, err = c.pickCountry(ctx); err != nil || !ok {
		return err
	}

	c.out.Println("\nEnter recipe details:")
	texts := []struct {
		label string
		field validate.Field
		dst   *string
	}{
		{"Instructions (required): ", validate.Instructions, &rec.Instructions},
		{"Preparation time (e.g., '30 minutes'): ", validate.PrepTime, &rec.PrepTime},
		{"Cooking time (e.g., '45 minutes'): ", validate.CookTime, &rec.CookTime},
	}
	for _, v := range texts {
		if *v.dst, err = c.field(ctx, v.label, v.field); err != nil {
			return err
		}
	}
	if rec.Servings, err = c.servings(ctx); err != nil {
		return err
	}
	if rec.FamilyNotes, err = c.field(ctx,
		"Family notes/story (optional): ", validate.FamilyNotes); err != nil {
		return err
	}

	id, err := c.store.Recipes.Add(ctx, c.sess, rec)
	if err != nil {
		c.report(err)
		return nil
	}
	c.sess.Logger().Info("recipe added", "id", id, "name", rec.Name)
	c.out.Success("Recipe '%s' added successfully!", rec.Name)

	return c.recipeIngredients(ctx, id)
}

// servings asks for an optional positive number of servings.
func (c *CLI) servings(ctx context.Context) (*int, error) {
	for {
		s, err := c.prompt(ctx, "Number of servings (optional): ")
		if err != nil || s == "" {
			return nil, err
		}
		n, err := c.val.Servings(s)
		if err != nil {
			c.out.Failure("%s", validate.Message(err))
			continue
		}
		return &n, nil
	}
}

// recipeIngredients attaches ingredients until a blank name is given.
func (c *CLI) recipeIngredients(ctx context.Context, recipeID int64) error {
	c.out.Println("\nNow, let's add ingredients to your recipe.")
	for {
		name, err := c.prompt(ctx, "\nIngredient name (leave blank to finish): ")
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		if err = c.val.Field(validate.IngredientName, name); err != nil {
			c.out.Failure("%s", validate.Message(err))
			continue
		}

		qty, err := c.quantity(ctx)
		if err != nil {
			return err
		}
		unit, err := c.field(ctx, "Unit (e.g., cups, tbsp): ", validate.Unit)
		if err != nil {
			return err
		}

		ingID, err := c.store.Ingredients.AddOrGet(ctx, name)
		if err != nil {
			c.report(err)
			continue
		}
		err = c.store.Recipes.AttachIngredient(ctx, recipeID, ingID, qty, unit)
		switch {
		case errcode.Is(err, errcode.ConstraintViolationError):
			c.out.Failure("%s is already in this recipe.", name)
		case err != nil:
			c.report(err)
		default:
			c.out.Success("Added %s %s to recipe.", display.Amount(qty, unit), name)
		}
	}
	c.out.Println("All ingredients added!")
	return nil
}

func (c *CLI) quantity(ctx context.Context) (float64, error) {
	for {
		s, err := c.prompt(ctx, "Quantity (e.g., 2): ")
		if err != nil {
			return 0, err
		}
		q, err := c.val.Quantity(s)
		if err != nil {
			c.out.Failure("%s", validate.Message(err))
			continue
		}
		return q, nil
	}
}

func (c *CLI) deleteRecipe(ctx context.Context) error {
	uid, ok := c.sess.UserID()
	if !ok {
		return nil
	}

	recipes, err := c.store.Recipes.ListByUser(ctx, uid)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(recipes) == 0 {
		c.out.Println("\nYou have no recipes to delete.")
		return nil
	}
	c.out.Recipes("Your Recipes", recipes)

	s, err := c.prompt(ctx,
		"\nEnter the ID of the recipe to delete (or 'back' to cancel): ")
	if err != nil || strings.EqualFold(s, "back") {
		return err
	}
	id, ok := parseID(s)
	if !ok {
		c.out.Failure("Invalid recipe ID.")
		return nil
	}

	err = c.store.Recipes.Delete(ctx, c.sess, id)
	switch {
	case errcode.Is(err, errcode.NotFoundError):
		c.out.Failure("Recipe not found.")
	case err != nil:
		c.report(err)
	default:
		c.sess.Logger().Info("recipe deleted", "id", id)
		c.out.Success("Recipe deleted successfully!")
	}
	return nil
}
