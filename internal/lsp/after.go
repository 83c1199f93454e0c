package lsp

import (
	"fmt"
	"io"
)

// Flyable is the flight capability. Implementations must not fail.
type Flyable interface {
	Fly()
}

// Compile-time check that both birds are substitutable.
var (
	_ Flyable = (*Bird)(nil)
	_ Flyable = (*Penguin)(nil)
)

// PenguinMessage is what a penguin says when asked to fly.
const PenguinMessage = "Penguins can't fly, but they swim!"

// Bird flies.
type Bird struct {
	out io.Writer
}

// NewBird creates a bird that prints to out.
func NewBird(out io.Writer) *Bird {
	return &Bird{out: out}
}

// Fly prints "Flying!".
func (b *Bird) Fly() {
	fmt.Fprintln(b.out, "Flying!")
}

// Penguin honors Fly without flying.
type Penguin struct {
	out io.Writer
}

// NewPenguin creates a penguin that prints to out.
func NewPenguin(out io.Writer) *Penguin {
	return &Penguin{out: out}
}

// Fly prints PenguinMessage.
func (p *Penguin) Fly() {
	fmt.Fprintln(p.out, PenguinMessage)
}

// FlyAll asks every flyer to fly, in order.
func FlyAll(flyers ...Flyable) {
	for _, f := range flyers {
		f.Fly()
	}
}
