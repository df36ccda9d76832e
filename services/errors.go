package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to anything.
var ErrNotFound = errors.New("not found")

// ValidationError rejects bad input before any state changes. Callers map
// it to a 400 at the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
