package ocp

import "math"

// Shape is anything with an area.
type Shape interface {
	Area() float64
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64
	Height float64
}

// Area returns width × height.
func (r Rectangle) Area() float64 { return r.Width * r.Height }

// Circle is a circle of the given radius.
type Circle struct {
	Radius float64
}

// Area returns π × radius².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Triangle was added after ComputeArea was written; nothing else changed.
type Triangle struct {
	Base   float64
	Height float64
}

// Area returns base × height / 2.
func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }

// ComputeArea returns the area of shape. Dimensions are not validated.
func ComputeArea(shape Shape) float64 {
	return shape.Area()
}

// TotalArea sums the areas of shapes.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += ComputeArea(s)
	}
	return total
}
