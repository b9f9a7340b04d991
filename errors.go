package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvariantViolation signals a structurally broken tree. It is never
	// caused by client input; it always points to a defect in split, borrow
	// or merge logic.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
