package solid

import (
	"io"

	"github.com/bft-labs/solid/pkg/log"
)

// Option configures optional behavior of a Catalog.
type Option func(*options)

type options struct {
	out    io.Writer
	logger log.Logger
	extra  []Demo
}

func defaultOptions() options {
	return options{
		out:    io.Discard,
		logger: log.NoopLogger{},
	}
}

// WithOutput sets where demo console lines are written.
// If not provided, output is discarded.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
	}
}

// WithLogger sets a structured logger.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = log.OrNoop(logger)
	}
}

// WithDemo registers an additional demo after the built-in five.
// A demo with a built-in name replaces it.
func WithDemo(d Demo) Option {
	return func(o *options) {
		o.extra = append(o.extra, d)
	}
}
