package iorepo

import (
	"github.com/gnames/pantry/pkg/db"
	"github.com/gnames/pantry/pkg/pantry"
)

// NewUserRepoWithCost lets tests hash passwords quickly.
func NewUserRepoWithCost(op db.Operator, cost int) pantry.UserRepo {
	return &userRepo{op: op, cost: cost}
}
