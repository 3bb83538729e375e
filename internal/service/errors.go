package service

import (
	"errors"
	"fmt"
)

// ValidationError reports caller input that violates a domain invariant. It
// is always returned before any write reaches storage, so the caller can fix
// the input and retry.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFoundError reports an update aimed at a row that does not exist.
// Deletes report absence through a false result instead of an error.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %d not found", e.Entity, e.ID) }

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
