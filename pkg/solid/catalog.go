package solid

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/solid/internal/domain"
	"github.com/bft-labs/solid/pkg/log"
)

// Variant selects which half of an example pair runs.
type Variant = domain.Variant

// Variants accepted by Run.
const (
	VariantBefore = domain.VariantBefore
	VariantAfter  = domain.VariantAfter
	VariantBoth   = domain.VariantBoth
)

// ParseVariant converts a string into a Variant.
func ParseVariant(s string) (Variant, error) {
	return domain.ParseVariant(s)
}

// Demo is one before/after example pair.
type Demo interface {
	// Name is the short lookup key, e.g. "dip".
	Name() string

	// Principle is the human-readable principle name.
	Principle() string

	// Run executes one design. v is VariantBefore or VariantAfter.
	Run(v Variant) error
}

// Catalog holds the registered demos in display order.
type Catalog struct {
	out    io.Writer
	logger log.Logger
	demos  []Demo
	index  map[string]int
}

// New creates a Catalog holding the five built-in demos plus any added
// with WithDemo.
func New(opts ...Option) *Catalog {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		out:    o.out,
		logger: o.logger,
		index:  make(map[string]int),
	}
	for _, d := range builtins(o.out, o.logger) {
		c.register(d)
	}
	for _, d := range o.extra {
		c.register(d)
	}
	return c
}

func (c *Catalog) register(d Demo) {
	if i, ok := c.index[d.Name()]; ok {
		c.demos[i] = d
		return
	}
	c.index[d.Name()] = len(c.demos)
	c.demos = append(c.demos, d)
}

// Names returns the registered demo names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.demos))
	for i, d := range c.demos {
		names[i] = d.Name()
	}
	return names
}

// Lookup returns the demo registered under name.
func (c *Catalog) Lookup(name string) (Demo, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDemo, name)
	}
	return c.demos[i], nil
}

// Run executes the named demos in the given order. All names are resolved
// before anything runs. Running no names is a no-op.
func (c *Catalog) Run(variant Variant, names ...string) error {
	if _, err := domain.ParseVariant(string(variant)); err != nil {
		return err
	}

	demos := make([]Demo, 0, len(names))
	for _, n := range names {
		d, err := c.Lookup(n)
		if err != nil {
			return err
		}
		demos = append(demos, d)
	}

	for _, d := range demos {
		if variant.IncludesBefore() {
			if err := c.runOne(d, VariantBefore); err != nil {
				return err
			}
		}
		if variant.IncludesAfter() {
			if err := c.runOne(d, VariantAfter); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) runOne(d Demo, v Variant) error {
	fmt.Fprintf(c.out, "== %s (%s) [%s]\n", d.Principle(), d.Name(), v)
	c.logger.Debug("running demo", log.String("demo", d.Name()), log.String("variant", string(v)))

	err := d.Run(v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotImplemented):
		fmt.Fprintf(c.out, "violation: %v\n", err)
		c.logger.Warn("design violates its contract", log.String("demo", d.Name()), log.Err(err))
		return nil
	default:
		c.logger.Error("demo failed", log.String("demo", d.Name()), log.Err(err))
		return fmt.Errorf("demo %s: %w", d.Name(), err)
	}
}
