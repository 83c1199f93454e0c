package lsp

import (
	"fmt"
	"io"

	"github.com/bft-labs/solid/internal/domain"
)

// LegacyBird promises that Fly succeeds.
type LegacyBird struct {
	out io.Writer
}

// NewLegacyBird creates a bird that prints to out.
func NewLegacyBird(out io.Writer) *LegacyBird {
	return &LegacyBird{out: out}
}

// Fly prints "Flying!".
func (b *LegacyBird) Fly() error {
	_, err := fmt.Fprintln(b.out, "Flying!")
	return err
}

// LegacyPenguin is a LegacyBird that breaks the Fly contract.
type LegacyPenguin struct {
	LegacyBird
}

// NewLegacyPenguin creates the substitution-breaking penguin.
func NewLegacyPenguin(out io.Writer) *LegacyPenguin {
	return &LegacyPenguin{LegacyBird: LegacyBird{out: out}}
}

// Fly always fails with domain.ErrNotImplemented.
func (p *LegacyPenguin) Fly() error {
	return fmt.Errorf("penguin fly: %w", domain.ErrNotImplemented)
}

// LegacyFlier is what callers of the legacy hierarchy program against.
type LegacyFlier interface {
	Fly() error
}

// LaunchAll flies every bird and stops at the first failure.
func LaunchAll(birds ...LegacyFlier) error {
	for _, b := range birds {
		if err := b.Fly(); err != nil {
			return err
		}
	}
	return nil
}
