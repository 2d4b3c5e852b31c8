package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the addressed row doesn't exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when an insert collides with an existing
// primary key: a duplicate content hash, a satellite that already has its
// one row, or a lost max+1 race.
var ErrAlreadyExists = errors.New("record already exists")

// ErrReferenceNotFound is returned when a non-null foreign key references a
// row that doesn't exist.
var ErrReferenceNotFound = errors.New("referenced record not found")

// ErrStoreUnavailable wraps persistence failures that are not correctable by
// the caller.
var ErrStoreUnavailable = errors.New("record store unavailable")

// RefError identifies which reference was dangling. It unwraps to
// ErrReferenceNotFound.
type RefError struct {
	Kind Kind
	Key  interface{}
}

func (e *RefError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Kind, e.Key, ErrReferenceNotFound)
}

func (e *RefError) Unwrap() error { return ErrReferenceNotFound }
