package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSeedCount means a playoff field is empty or not a power of two.
	ErrInvalidSeedCount = errors.New("invalid seed count")
	// ErrDuplicateSeed means a team appears more than once across the playoff field.
	ErrDuplicateSeed = errors.New("duplicate seed")
	// ErrInvalidBestOf means a series length is not a positive odd number.
	ErrInvalidBestOf = errors.New("invalid series length")
)

// ValidationError reports rejected engine input before any game is played.
type ValidationError struct {
	Field  string
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Detail)
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AsValidationError attempts to unwrap err into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func invalid(field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Err: err, Detail: fmt.Sprintf(format, args...)}
}
