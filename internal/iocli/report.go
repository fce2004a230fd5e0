package iocli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pantry/pkg/errcode"
)

var emTags = strings.NewReplacer("<em>", "", "</em>", "")

// report tells the user what went wrong and logs the cause.
func (c *CLI) report(err error) {
	c.sess.Logger().Error("operation failed", "error", err)
	c.out.Failure("%s", message(err))
}

// message converts an error into text for the user, by error kind.
func message(err error) string {
	switch {
	case errcode.Is(err, errcode.DBTransientError):
		return "Lost connection to the database, please try again."
	case errcode.Is(err, errcode.PermissionDeniedError):
		return "You can only delete your own recipes."
	}

	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		msg := emTags.Replace(fmt.Sprintf(gnErr.Msg, gnErr.Vars...))
		if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") {
			msg += "."
		}
		return msg
	}
	return "Something went wrong, please try again."
}
