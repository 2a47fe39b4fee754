package axis

import (
	"errors"
	"fmt"
)

// ErrUnknownValue indicates a value outside an axis' closed set.
var ErrUnknownValue = errors.New("scriptgen: unknown axis value")

// UnknownValueError reports an unrecognized axis value.
type UnknownValueError struct {
	Axis  string
	Value string
}

// Error implements the error interface.
func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("scriptgen: unknown %s %q", e.Axis, e.Value)
}

// Is reports whether the target matches ErrUnknownValue.
func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownValue
}

// NewUnknownValueError creates a new UnknownValueError.
func NewUnknownValueError(axis, value string) *UnknownValueError {
	return &UnknownValueError{Axis: axis, Value: value}
}

// IsUnknownValue reports whether the error is an UnknownValueError.
func IsUnknownValue(err error) bool {
	var uerr *UnknownValueError
	return errors.As(err, &uerr)
}
