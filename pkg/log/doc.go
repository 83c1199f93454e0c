// Package log provides the structured logging abstraction used by the demos.
//
// Demo output (the lines a reader is meant to see, like "Flying!") is written
// to a plain io.Writer. Everything else, such as which variant ran or which
// illustrative failure was raised, goes through the Logger interface defined
// here so the examples never depend on a concrete logging library.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//
// Or discard everything in tests:
//
//	logger := log.NewNoopLogger()
package log
