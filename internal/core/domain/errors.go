package domain

import "errors"

// Domain errors represent contract violations and lookup failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a fraction was constructed with a zero denominator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero indicates a division by the zero fraction.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates a reduced result does not fit in int64.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
