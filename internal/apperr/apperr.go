// Package apperr defines the two failure classes handlers translate into
// HTTP responses: invalid input and storage failure.
package apperr

import "fmt"

// ValidationError reports malformed or out-of-domain input. It maps to a
// 4xx response with the message shown to the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError reports an I/O or constraint failure against the database.
// It maps to a 5xx response; the wrapped cause is logged, never leaked.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for operation op. Returns nil when
// err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
