package ocp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bft-labs/solid/internal/domain"
)

// shapeFactory builds a Shape from its dimensions.
type shapeFactory struct {
	dims  int
	build func(d []float64) Shape
}

// factories is the only place a new variant has to be registered for the CLI.
var factories = map[string]shapeFactory{
	"rectangle": {dims: 2, build: func(d []float64) Shape { return Rectangle{Width: d[0], Height: d[1]} }},
	"circle":    {dims: 1, build: func(d []float64) Shape { return Circle{Radius: d[0]} }},
	"triangle":  {dims: 2, build: func(d []float64) Shape { return Triangle{Base: d[0], Height: d[1]} }},
}

// ParseShape builds a shape from a kind name and its dimensions.
func ParseShape(kind string, dims ...float64) (Shape, error) {
	f, ok := factories[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", domain.ErrUnknownShape, kind, strings.Join(ShapeKinds(), ", "))
	}
	if len(dims) != f.dims {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", domain.ErrInvalidDimensions, kind, f.dims, len(dims))
	}
	return f.build(dims), nil
}

// ShapeKinds returns the registered shape names in sorted order.
func ShapeKinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
