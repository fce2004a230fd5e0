package ioseed

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
)

func SeedReadError(path string, err error) error {
	msg := "Cannot read catalog <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.SeedReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func SeedImportError(item string, err error) error {
	msg := "Import stopped at <em>%s</em>"
	vars := []any{item}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return &gn.Error{
		Code: errcode.SeedImportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot import %s: %w", fn, item, err),
	}
}
