package model

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; the concrete error types below unwrap to them.
var (
	ErrInputValidation   = errors.New("invalid input")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrArityMismatch     = errors.New("arity mismatch")
)

// InputValidationError reports a malformed or out-of-range argument.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputValidationError) Unwrap() error { return ErrInputValidation }

// InsufficientDataError reports a series shorter than a method's minimum.
type InsufficientDataError struct {
	Method   string
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	if e.Required == 0 {
		return fmt.Sprintf("insufficient data for %s", e.Method)
	}
	return fmt.Sprintf("need at least %d data points for %s, got %d", e.Required, e.Method, e.Got)
}

func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }

// UnsupportedMethodError reports an unknown forecasting method tag.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported forecasting method: %q", e.Method)
}

func (e *UnsupportedMethodError) Unwrap() error { return ErrUnsupportedMethod }

// ArityMismatchError reports actual/predicted series of different lengths.
type ArityMismatchError struct {
	Actual    int
	Predicted int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("actual and predicted series must have same length (%d != %d)", e.Actual, e.Predicted)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// Invalid is shorthand for building an InputValidationError.
func Invalid(field, format string, args ...any) error {
	return &InputValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
