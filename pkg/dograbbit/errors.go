package dograbbit

import "errors"

var (
	// Input doesn't fit the 3x5 grid, wrapped with details about the offending line
	ErrInvalidInputShape = errors.New("invalid input shape")
	ErrInvalidNotation   = errors.New("invalid notation")
)
