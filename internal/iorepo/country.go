package iorepo

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
)

type countryRepo struct {
	op db.Operator
}

// NewCountryRepo creates a pantry.CountryRepo.
func NewCountryRepo(op db.Operator) pantry.CountryRepo {
	return &countryRepo{op: op}
}

func (r *countryRepo) List(ctx context.Context) ([]pantry.Country, error) {
	q := "SELECT id, name FROM countries ORDER BY name"
	res, err := list(ctx, r.op, scanCountry, q)
	if err != nil {
		return res, err
	}
	slog.Debug("listed countries", "count", len(res))
	return res, nil
}

func (r *countryRepo) Add(
	ctx context.Context,
	name string,
) (pantry.Country, error) {
	q := "INSERT INTO countries (name) VALUES ($1) RETURNING id"
	id, err := insertID(ctx, r.op, "country", q, name)
	if isDuplicate(err) {
		return pantry.Country{}, DuplicateError("Country", name, err)
	}
	if err != nil {
		return pantry.Country{}, err
	}
	slog.Debug("added country", "id", id, "name", name)
	return pantry.Country{ID: id, Name: name}, nil
}

func (r *countryRepo) FindByName(
	ctx context.Context,
	name string,
) (pantry.Country, error) {
	q := "SELECT id, name FROM countries WHERE name = $1"
	res, ok, err := first(ctx, r.op, scanCountry, q, name)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, NotFoundError("Country", name)
	}
	return res, nil
}

func scanCountry(rows *sql.Rows) (pantry.Country, error) {
	var res pantry.Country
	err := rows.Scan(&res.ID, &res.Name)
	return res, err
}
