package db

import (
	"errors"
	"fmt"
)

var ErrConstraintViolation = errors.New("constraint violation")

// StorageError wraps every failure that comes out of the database layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func constraintError(op string, err error) error {
	return &StorageError{Op: op, Err: fmt.Errorf("%w: %v", ErrConstraintViolation, err)}
}
