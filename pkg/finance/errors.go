package finance

import "errors"

// Calculation error kinds. Callers can match these with errors.Is.
var (
	// ErrInvalidInput indicates a negative amount, a non-positive horizon, or
	// an otherwise malformed profile. Inputs are never silently clamped.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionUndefined indicates a rate that cannot be computed because
	// the denominator income is zero. Callers must special-case zero income
	// rather than receive a sentinel value.
	ErrDivisionUndefined = errors.New("division undefined for zero income")
)
