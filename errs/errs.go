// Package errs classifies the errors that reach the command boundary.
//
// A QueryError is a problem with what the user typed: it is shown to them
// verbatim and the bot carries on. Every other error is an unexpected
// failure and is logged for the operator.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// A QueryError is a user input problem: missing arguments, a malformed
// pattern, an out-of-range level, an unknown type/stat/class name.
type QueryError struct {
	Message string
	Cause   error
}

func (e *QueryError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// Query creates a QueryError with a formatted message.
func Query(format string, args ...interface{}) error {
	return &QueryError{Message: fmt.Sprintf(format, args...)}
}

// QueryCause creates a QueryError that keeps err as its cause.
func QueryCause(err error, format string, args ...interface{}) error {
	return &QueryError{Message: fmt.Sprintf(format, args...), Cause: err}
}

// AsQuery returns the QueryError in err's chain, if any. Errors wrapped
// with pkg/errors are unwrapped through their Cause.
func AsQuery(err error) (*QueryError, bool) {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe, true
	}
	if qe, ok := errors.Cause(err).(*QueryError); ok {
		return qe, true
	}
	return nil, false
}

// IsQuery returns true if err is or wraps a QueryError.
func IsQuery(err error) bool {
	_, ok := AsQuery(err)
	return ok
}
