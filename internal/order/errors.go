package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("no access to these orders")
	ErrNoItems   = errors.New("order must contain at least one item")

	ErrInvalidStatus = errors.New("invalid order status")
)

// NotFoundError identifies which entity was missing. It matches
// errors.Is(err, ErrNotFound) so callers can branch on the kind alone.
type NotFoundError struct {
	Entity string // "order", "customer profile", "product"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(entity, id string) error { return &NotFoundError{Entity: entity, ID: id} }
