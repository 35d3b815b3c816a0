package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a named resource (e.g. a catalog query) does
// not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a submitted log entry
// fails type or domain checks (e.g. age outside 16-100, unknown gender).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrLoad is returned by the dataset loader when the source file is missing,
// unreadable or malformed. It is fatal at startup.
var ErrLoad = errors.New("load error")

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("missing field")

// MissingFieldError reports that a query needs a column the loaded table
// does not carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %q", e.Field)
}

// Is lets errors.Is(err, ErrMissingField) match any MissingFieldError.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
