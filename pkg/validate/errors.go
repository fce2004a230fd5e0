package validate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
)

// ValidationError reports input that breaks the policy. Msg is ready
// to be shown to the user.
func ValidationError(f Field, text string, err error) error {
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  "%s",
		Vars: []any{text},
		Err:  fmt.Errorf("invalid %s: %w", f, err),
	}
}

// Message returns the user-facing text of a validation error.
func Message(err error) string {
	gnErr, ok := err.(*gn.Error)
	if !ok || len(gnErr.Vars) == 0 {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	return fmt.Sprint(gnErr.Vars[0])
}
