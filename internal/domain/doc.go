// Package domain contains the values shared across the SOLID examples.
//
// The examples themselves are leaves and never import each other. The only
// thing they have in common is the error vocabulary in this package and the
// [Variant] selector used by the demo catalog.
//
// # Errors
//
//   - [ErrNotImplemented]: the illustrative failure raised by "before" designs
//   - [ErrUnknownDemo], [ErrUnknownShape], [ErrInvalidDimensions]: lookup failures
//   - [ErrInvalidConfig]: configuration validation failures
package domain
