package iocli

import (
	"context"
	"strconv"

	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/gnames/pantry/pkg/validate"
)

func (c *CLI) browseByCountry(ctx context.Context) error {
	countries, err := c.store.Countries.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(countries) == 0 {
		c.out.Println("\nNo countries found.")
		return nil
	}

	c.out.Heading("AVAILABLE COUNTRIES", 40)
	rows := make([][2]string, 0, len(countries)+1)
	for i, v := range countries {
		rows = append(rows, [2]string{strconv.Itoa(i + 1), v.Name})
	}
	back := len(countries) + 1
	rows = append(rows, [2]string{strconv.Itoa(back), "Back to Main Menu"})
	c.out.Options("Country", rows)

	n, err := c.choose(ctx, "Select a country: ", 1, back)
	if err != nil || n == back {
		return err
	}

	country := countries[n-1]
	foods, err := c.store.Foods.ListByCountry(ctx, country.ID)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(foods) == 0 {
		c.out.Printf("\nNo foods found for %s.\n", country.Name)
		c.out.Println(
			"You can add foods for this country using option 4 from the main menu!",
		)
		return nil
	}
	c.out.Foods("Foods from "+country.Name, foods)
	return nil
}

func (c *CLI) viewFoods(ctx context.Context) error {
	foods, err := c.store.Foods.List(ctx)
	if err != nil {
		c.report(err)
		return nil
	}
	c.out.Foods("All Foods", foods)
	return nil
}

func (c *CLI) foodDetails(ctx context.Context) error {
	if err := c.viewFoods(ctx); err != nil {
		return err
	}

	id, ok, err := c.askID(ctx,
		"\nEnter food ID to view details (or 'back' to return): ",
		"Please enter a valid numeric food ID.",
	)
	if err != nil || !ok {
		return err
	}

	f, err := c.store.Foods.Get(ctx, id)
	switch {
	case errcode.Is(err, errcode.NotFoundError):
		c.out.Failure("Food not found.")
	case err != nil:
		c.report(err)
	default:
		c.out.FoodDetails(f)
	}
	return nil
}

func (c *CLI) addFood(ctx context.Context) error {
	c.out.Heading("ADD NEW FOOD", 40)
	name, err := c.field(ctx, "Enter food name: ", validate.FoodName)
	if err != nil {
		return err
	}

	countryID, ok, err := c.pickCountry(ctx)
	if err != nil || !ok {
		return err
	}

	desc, err := c.field(ctx,
		"Enter description (optional): ", validate.Description)
	if err != nil {
		return err
	}

	_, err = c.store.Foods.Add(ctx, pantry.NewFood{
		Name:        name,
		CountryID:   countryID,
		Description: desc,
	})
	if err != nil {
		c.report(err)
		return nil
	}
	c.out.Success("Food '%s' added successfully!", name)
	return nil
}

// pickCountry lets the user choose a country or add a new one. The
// bool is false when no country could be resolved.
func (c *CLI) pickCountry(ctx context.Context) (*int64, bool, error) {
	countries, err := c.store.Countries.List(ctx)
	if err != nil {
		c.report(err)
		return nil, false, nil
	}

	c.out.Println("\nSelect Country:")
	rows := make([][2]string, 0, len(countries)+1)
	for i, v := range countries {
		rows = append(rows, [2]string{strconv.Itoa(i + 1), v.Name})
	}
	add := len(countries) + 1
	rows = append(rows, [2]string{strconv.Itoa(add), "Add New Country"})
	c.out.Options("Country", rows)

	n, err := c.choose(ctx, "Select country: ", 1, add)
	if err != nil {
		return nil, false, err
	}
	if n < add {
		id := countries[n-1].ID
		return &id, true, nil
	}

	name, err := c.field(ctx, "Enter new country name: ", validate.CountryName)
	if err != nil {
		return nil, false, err
	}
	_, err = c.store.Countries.Add(ctx, name)
	switch {
	case errcode.Is(err, errcode.ConstraintViolationError):
		c.out.Printf("Country '%s' already exists, using it.\n", name)
	case err != nil:
		c.report(err)
		return nil, false, nil
	default:
		c.out.Success("Country '%s' added successfully!", name)
	}

	country, err := c.store.Countries.FindByName(ctx, name)
	if err != nil {
		c.report(err)
		return nil, false, nil
	}
	return &country.ID, true, nil
}
