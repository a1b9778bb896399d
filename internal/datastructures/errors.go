package datastructures

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is returned by delete-family and query operations on a list with no nodes.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidPosition is returned for a negative position or index.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrOutOfRange is returned when no node exists at the requested offset.
	ErrOutOfRange = errors.New("position out of range")
	// ErrNotFound is returned by Delete when no node holds the value.
	ErrNotFound = errors.New("value not found")
)

func invalidPosition(position int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPosition, position)
}

func outOfRange(position int) error {
	return fmt.Errorf("%w: %d", ErrOutOfRange, position)
}

func notFound[T any](value T) error {
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}
