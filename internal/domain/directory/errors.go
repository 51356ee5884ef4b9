// Package directory holds the error kinds shared by every Directory
// (document store) implementation.
package directory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Error reports a failed read or write against the Directory. It is a
// dependency failure: callers surface it and never substitute a value.
type Error struct {
	Collection string
	Op         string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("directory %s %s: %v", e.Collection, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap turns a store error into a *Error. nil stays nil and ErrNotFound is
// passed through so callers can keep matching it with errors.Is.
func Wrap(collection, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Collection: collection, Op: op, Err: err}
}

// IsUnavailable reports whether err is a Directory dependency failure.
func IsUnavailable(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
