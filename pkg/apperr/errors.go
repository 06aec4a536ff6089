package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// StorageError wraps a failure raised by the database during a write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Op + ": storage error"
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// ValidationError carries per-field reasons for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", ErrValidation, len(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFound returns an error matching ErrNotFound with an entity-specific message.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Conflict returns an error matching ErrConflict.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
