package errcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	inner := &gn.Error{
		Code: errcode.ConstraintViolationError,
		Msg:  "duplicate",
		Err:  errors.New("unique violation"),
	}
	outer := &gn.Error{
		Code: errcode.SeedImportError,
		Msg:  "seed failed",
		Err:  fmt.Errorf("importing Ghana: %w", inner),
	}

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		res  bool
	}{
		{"nil", nil, errcode.NotFoundError, false},
		{"plain error", errors.New("boom"), errcode.NotFoundError, false},
		{"direct match", inner, errcode.ConstraintViolationError, true},
		{"direct mismatch", inner, errcode.NotFoundError, false},
		{"outer code", outer, errcode.SeedImportError, true},
		{"wrapped code", outer, errcode.ConstraintViolationError, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", inner), errcode.ConstraintViolationError, true},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, errcode.Is(v.err, v.code), v.msg)
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, errcode.UnknownError, errcode.Code(errors.New("x")))
	err := &gn.Error{Code: errcode.NotFoundError, Err: errors.New("x")}
	assert.Equal(t, errcode.NotFoundError, errcode.Code(err))
}
