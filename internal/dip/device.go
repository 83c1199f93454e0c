package dip

import (
	"fmt"
	"io"
)

// Device console lines.
const (
	LightOn  = "Light is On!"
	LightOff = "Light is Off!"
	FanOn    = "Fan is spinning!"
	FanOff   = "Fan stopped."
)

// Switchable is the capability a Switch controls.
type Switchable interface {
	TurnOn()
	TurnOff()
}

var (
	_ Switchable = (*LightBulb)(nil)
	_ Switchable = (*Fan)(nil)
)

// LightBulb prints its state changes.
type LightBulb struct {
	out io.Writer
}

// NewLightBulb creates a bulb printing to out.
func NewLightBulb(out io.Writer) *LightBulb {
	return &LightBulb{out: out}
}

// TurnOn prints LightOn.
func (l *LightBulb) TurnOn() { fmt.Fprintln(l.out, LightOn) }

// TurnOff prints LightOff.
func (l *LightBulb) TurnOff() { fmt.Fprintln(l.out, LightOff) }

// Fan prints its state changes.
type Fan struct {
	out io.Writer
}

// NewFan creates a fan printing to out.
func NewFan(out io.Writer) *Fan {
	return &Fan{out: out}
}

// TurnOn prints FanOn.
func (f *Fan) TurnOn() { fmt.Fprintln(f.out, FanOn) }

// TurnOff prints FanOff.
func (f *Fan) TurnOff() { fmt.Fprintln(f.out, FanOff) }
