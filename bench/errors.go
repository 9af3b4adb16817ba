package bench

import "errors"

var (
	// ErrInvalidSize is returned when a sweep size is not positive.
	ErrInvalidSize = errors.New("bench: size must be positive")

	// ErrNoMatchers is returned when Run is given no (or a nil) matcher.
	ErrNoMatchers = errors.New("bench: at least one non-nil matcher is required")
)
