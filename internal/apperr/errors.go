package apperr

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an operation needs at least one element and got none.
var ErrEmptyInput = errors.New("empty input")

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// InvalidParameterError reports a grouping key that the run schema does not define.
type InvalidParameterError struct {
	Key string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q", e.Key)
}

func NewInvalidParameter(key string) *InvalidParameterError {
	return &InvalidParameterError{Key: key}
}
