package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/config"
	"github.com/gnames/pantry/pkg/errcode"
)

func ConnectionError(cfg *config.DatabaseConfig, err error) error {
	msg := "Cannot connect to <em>%s</em> database <em>%s</em>"
	target := cfg.Path
	if cfg.Driver != "sqlite" {
		target = fmt.Sprintf("%s@%s:%d/%s",
			cfg.User, cfg.Host, cfg.Port, cfg.Database)
	}
	vars := []any{cfg.Driver, target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s: %w",
			fn, target, err),
	}
}

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: no database configuration to connect with",
			fn),
	}
}

func TransientError(query string, err error) error {
	msg := "Lost connection to the database, please try again"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBTransientError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: retry after reconnect failed for %q: %w",
			fn, compact(query), err),
	}
}

func QueryError(query string, err error) error {
	msg := "Database operation failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: %q: %w", fn, compact(query), err),
	}
}

func ConstraintError(query string, err error) error {
	msg := "Record already exists"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.ConstraintViolationError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: unique constraint violated by %q: %w",
			fn, compact(query), err),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: table %s: %w", fn, table, err),
	}
}
