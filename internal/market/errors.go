// Package market exposes the item, supermarket and purchase operations on top
// of the entity stores, translating store misses into typed errors.
package market

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a supermarket is created with a name
	// that is already taken.
	ErrDuplicateName = errors.New("supermarket name already exists")
)

// NotFoundError reports an identifier that did not resolve.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}
