// Package repository contains data access layer abstractions.
// Implementations live in subpackages: postgres for the sales tables and
// mongodb for the document collections.
package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed row or document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrConstraint is returned when a conditional write matched nothing
	// because its guard did not hold.
	ErrConstraint = errors.New("constraint not satisfied")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
