package s64shift

import "errors"

var (
	// ErrNoValues indicates a sweep configured with a non-positive sample count
	ErrNoValues = errors.New("sweep value count must be positive")
	// ErrNegativeMax indicates a sweep range upper bound below zero
	ErrNegativeMax = errors.New("sweep max value must be non-negative")
)
