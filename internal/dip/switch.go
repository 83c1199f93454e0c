package dip

import (
	"fmt"
	"io"

	"github.com/bft-labs/solid/pkg/log"
)

// ToggleMessage is printed before the device is turned on.
const ToggleMessage = "Toggling the switch."

// Option configures optional behavior of a Switch.
type Option func(*Switch)

// WithOutput sets where the switch prints ToggleMessage. Defaults to io.Discard.
func WithOutput(out io.Writer) Option {
	return func(s *Switch) {
		s.out = out
	}
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Switch) {
		s.log = log.OrNoop(logger)
	}
}

// Switch controls any Switchable. It does not own the device; the caller
// keeps it alive for as long as the switch is in use.
type Switch struct {
	device Switchable
	out    io.Writer
	log    log.Logger
}

// NewSwitch creates a switch bound to device.
func NewSwitch(device Switchable, opts ...Option) *Switch {
	s := &Switch{
		device: device,
		out:    io.Discard,
		log:    log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle prints ToggleMessage and turns the device on, exactly once per call.
func (s *Switch) Toggle() {
	fmt.Fprintln(s.out, ToggleMessage)
	s.log.Debug("toggle", log.String("device", fmt.Sprintf("%T", s.device)))
	s.device.TurnOn()
}
