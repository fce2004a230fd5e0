// Package ioseed imports a YAML catalog of countries, foods and
// ingredients through the pantry repositories.
package ioseed

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/pantry/internal/iofs"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/gnames/pantry/pkg/pantry"
	"github.com/gnames/pantry/pkg/seed"
)

type seeder struct {
	store    *pantry.Store
	progress io.Writer
}

// New creates a Seeder. When progress is false no progress bar is
// drawn.
func New(store *pantry.Store, progress bool) seed.Seeder {
	res := seeder{store: store, progress: io.Discard}
	if progress {
		res.progress = os.Stderr
	}
	return &res
}

// Load reads and validates a catalog file.
func Load(path string) (*seed.Catalog, error) {
	data, err := iofs.ReadFile(path)
	if err != nil {
		return nil, SeedReadError(path, err)
	}
	cat, err := seed.Parse(data)
	if err != nil {
		return nil, SeedReadError(path, err)
	}
	return cat, nil
}

// Import implements seed.Seeder. Items are imported one at a time and
// the first repository failure stops the import.
func (s *seeder) Import(
	ctx context.Context,
	cat *seed.Catalog,
) (seed.Summary, error) {
	var res seed.Summary

	var total int
	for _, v := range cat.Countries {
		total += len(v.Foods)
	}
	bar := pb.Full.New(total)
	bar.SetWriter(s.progress)
	bar.Set("prefix", "Importing foods: ")
	bar.Set(pb.CleanOnFinish, true)
	bar.Start()
	defer bar.Finish()

	for _, country := range cat.Countries {
		id, added, err := s.country(ctx, country.Name)
		if err != nil {
			return res, SeedImportError(country.Name, err)
		}
		if added {
			res.CountriesAdded++
		} else {
			res.CountriesReused++
		}

		present, err := s.foodNames(ctx, id)
		if err != nil {
			return res, SeedImportError(country.Name, err)
		}

		for _, food := range country.Foods {
			bar.Increment()
			if _, ok := present[food.Name]; ok {
				res.FoodsSkipped++
				slog.Debug("food already present",
					"country", country.Name, "food", food.Name)
				continue
			}

			links, err := s.food(ctx, id, food)
			if err != nil {
				return res, SeedImportError(food.Name, err)
			}
			present[food.Name] = struct{}{}
			res.FoodsAdded++
			res.Links += links
		}
	}

	slog.Info("catalog imported",
		"foods", res.FoodsAdded,
		"skipped", res.FoodsSkipped,
		"links", res.Links,
	)
	return res, nil
}

// country adds a country or finds the existing one.
func (s *seeder) country(ctx context.Context, name string) (int64, bool, error) {
	c, err := s.store.Countries.Add(ctx, name)
	if err == nil {
		return c.ID, true, nil
	}
	if !errcode.Is(err, errcode.ConstraintViolationError) {
		return 0, false, err
	}
	c, err = s.store.Countries.FindByName(ctx, name)
	if err != nil {
		return 0, false, err
	}
	return c.ID, false, nil
}

func (s *seeder) foodNames(
	ctx context.Context,
	countryID int64,
) (map[string]struct{}, error) {
	foods, err := s.store.Foods.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	res := make(map[string]struct{}, len(foods))
	for _, v := range foods {
		res[v.Name] = struct{}{}
	}
	return res, nil
}

func (s *seeder) food(
	ctx context.Context,
	countryID int64,
	food seed.Food,
) (int, error) {
	id, err := s.store.Foods.Add(ctx, pantry.NewFood{
		Name:        food.Name,
		CountryID:   &countryID,
		Description: food.Description,
	})
	if err != nil {
		return 0, err
	}

	for _, v := range food.Ingredients {
		ingID, err := s.store.Ingredients.AddOrGet(ctx, v.Name)
		if err != nil {
			return 0, err
		}
		err = s.store.Foods.AttachIngredient(ctx, id, ingID, v.Quantity, v.Unit)
		if err != nil {
			return 0, err
		}
	}
	return len(food.Ingredients), nil
}
