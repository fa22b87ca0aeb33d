package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the domain. Services and transports match on
// these with errors.Is; every lookup miss anywhere in the aggregate unwraps
// to ErrNotFound regardless of which nested entity was missing.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError is a lookup miss carrying the kind and id of the missing
// entity. It unwraps to ErrNotFound.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %q", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFound returns a NotFoundError for the given entity kind and id.
func NewNotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
