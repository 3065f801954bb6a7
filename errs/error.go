package errs

import (
	"errors"
	"fmt"
)

// Application error codes. They map a failure to a machine-readable category
// that the http layer translates into a status code. Any error without a
// code is treated as an internal error and its message is not shown to users.
const (
	ECONFLICT     = "conflict"
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EUNAUTHORIZED = "unauthorized"
)

// Error represents an application error with a code and a human-readable
// message. The message of any error carrying a code other than EINTERNAL is
// safe to show to users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code, or EINTERNAL for errors that
// don't carry one. A nil error returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message. Errors without a code
// yield a generic message so that internals don't leak to users.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Sentinel validation errors shared by multiple services.
var (
	IdInvalid      = Errorf(EINVALID, "The provided ID is invalid.")
	UserIdRequired = Errorf(EINVALID, "A user ID is required.")
)
