package iorepo

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
)

func NotFoundError(entity string, key any) error {
	msg := "%s <em>%v</em> not found"
	vars := []any{entity, key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no %s for %v", fn, entity, key),
	}
}

func PermissionDeniedError(recipeID int64) error {
	msg := "You can only delete your own recipes"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.PermissionDeniedError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: recipe %d belongs to another user",
			fn, recipeID),
	}
}

func DuplicateError(entity string, name any, err error) error {
	msg := "%s <em>%v</em> already exists"
	vars := []any{entity, name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ConstraintViolationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: duplicate %s %v: %w", fn, entity, name, err),
	}
}

func AuthenticationError(userName string, err error) error {
	msg := "Invalid username or password"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.AuthenticationError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: login as %q refused: %w",
			fn, userName, err),
	}
}

func PasswordHashError(err error) error {
	msg := "Password cannot be used"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: bcrypt: %w", fn, err),
	}
}

func NoIDError(entity string) error {
	msg := "Cannot save %s"
	vars := []any{entity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: insert of %s returned no id", fn, entity),
	}
}
