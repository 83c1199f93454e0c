package domain

import "errors"

// Domain errors shared by the examples and the demo catalog.
// Check them with errors.Is.
var (
	// ErrNotImplemented is returned by the "before" designs when a type is
	// forced to expose an operation it cannot honor.
	ErrNotImplemented = errors.New("solid: not implemented")

	// ErrUnknownDemo is returned when a demo name is not registered.
	ErrUnknownDemo = errors.New("solid: unknown demo")

	// ErrUnknownShape is returned when a shape kind cannot be parsed.
	ErrUnknownShape = errors.New("solid: unknown shape")

	// ErrInvalidDimensions is returned when a shape gets the wrong number of dimensions.
	ErrInvalidDimensions = errors.New("solid: invalid dimensions")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("solid: invalid configuration")
)
