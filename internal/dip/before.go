package dip

import (
	"fmt"
	"io"
)

// LegacySwitch depends on the concrete LightBulb. Controlling a Fan would
// mean editing this type.
type LegacySwitch struct {
	bulb *LightBulb
	out  io.Writer
}

// NewLegacySwitch builds its own bulb.
func NewLegacySwitch(out io.Writer) *LegacySwitch {
	return &LegacySwitch{bulb: NewLightBulb(out), out: out}
}

// Toggle prints ToggleMessage and turns the bulb on.
func (s *LegacySwitch) Toggle() {
	fmt.Fprintln(s.out, ToggleMessage)
	s.bulb.TurnOn()
}
