package iorepo

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
	"golang.org/x/crypto/bcrypt"
)

type userRepo struct {
	op   db.Operator
	cost int
}

// NewUserRepo creates a pantry.UserRepo. Passwords are stored as bcrypt
// hashes in the password column.
func NewUserRepo(op db.Operator) pantry.UserRepo {
	return &userRepo{op: op, cost: bcrypt.DefaultCost}
}

type userRow struct {
	user pantry.User
	hash string
}

// Authenticate has no side effects: the caller decides what to do with
// the returned user.
func (r *userRepo) Authenticate(
	ctx context.Context,
	userName, password string,
) (pantry.User, error) {
	q := `SELECT id, user_name, COALESCE(email, ''), password, country_id
		FROM users WHERE user_name = $1`
	row, ok, err := first(ctx, r.op, scanUserRow, q, userName)
	if err != nil {
		return pantry.User{}, err
	}
	if !ok {
		return pantry.User{}, AuthenticationError(userName, sql.ErrNoRows)
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.hash), []byte(password))
	if err != nil {
		slog.Info("failed login", "user", userName)
		return pantry.User{}, AuthenticationError(userName, err)
	}
	return row.user, nil
}

func (r *userRepo) Register(
	ctx context.Context,
	user pantry.NewUser,
) (pantry.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), r.cost)
	if err != nil {
		return pantry.User{}, PasswordHashError(err)
	}

	q := `INSERT INTO users (user_name, email, password, country_id)
		VALUES ($1, $2, $3, $4) RETURNING id`
	id, err := insertID(ctx, r.op, "user", q,
		user.UserName,
		nullString(user.Email),
		string(hash),
		nullInt64(user.CountryID),
	)
	if isDuplicate(err) {
		return pantry.User{}, DuplicateError("Username", user.UserName, err)
	}
	if err != nil {
		return pantry.User{}, err
	}

	slog.Info("registered user", "id", id, "user", user.UserName)
	res := pantry.User{
		ID:        id,
		UserName:  user.UserName,
		Email:     user.Email,
		CountryID: user.CountryID,
	}
	return res, nil
}

func scanUserRow(rows *sql.Rows) (userRow, error) {
	var res userRow
	var countryID sql.NullInt64
	err := rows.Scan(&res.user.ID, &res.user.UserName, &res.user.Email,
		&res.hash, &countryID)
	res.user.CountryID = int64Ptr(countryID)
	return res, err
}
