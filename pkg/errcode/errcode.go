package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigMissingError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTransientError
	DBQueryError
	DBTableExistsCheckError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Repository errors
	NotFoundError
	PermissionDeniedError
	ConstraintViolationError
	AuthenticationError

	// Input errors
	ValidationError

	// Seed errors
	SeedReadError
	SeedImportError
)

// Is reports whether err, or any error it wraps, is a *gn.Error
// with the given code. The chain is followed through both Unwrap
// and the Err field of gn.Error.
func Is(err error, code gn.ErrorCode) bool {
	for err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) {
			if gnErr.Code == code {
				return true
			}
			err = gnErr.Err
			continue
		}
		return false
	}
	return false
}

// Code returns the code of the outermost *gn.Error in the chain,
// or UnknownError if there is none.
func Code(err error) gn.ErrorCode {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return UnknownError
}
