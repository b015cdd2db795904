package field

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// MarkerColor is the default marker ink.
var MarkerColor = mustHex("#383838")

// Segment is a stroked line in marker-local coordinates.
type Segment struct {
	From, To Vec2
}

// Geometry is what a host draws for one marker, centered on the origin. A
// host strokes every segment and fills a disc when Radius > 0.
type Geometry struct {
	Segments    []Segment
	Radius      float64
	StrokeWidth float64
	Color       colorful.Color
}

// Shape picks the marker primitive. The animation does not care which one is
// used, it only moves markers around.
type Shape interface {
	Geometry() Geometry
}

// Plus draws two crossed segments with arms Size long.
type Plus struct {
	Size        float64
	StrokeWidth float64
	Color       colorful.Color
}

func (p Plus) Geometry() Geometry {
	return Geometry{
		Segments: []Segment{
			{Vec2{-p.Size, 0}, Vec2{p.Size, 0}},
			{Vec2{0, -p.Size}, Vec2{0, p.Size}},
		},
		StrokeWidth: p.StrokeWidth,
		Color:       p.Color,
	}
}

// Dot draws a filled disc.
type Dot struct {
	Radius float64
	Color  colorful.Color
}

func (d Dot) Geometry() Geometry {
	return Geometry{Radius: d.Radius, Color: d.Color}
}

// DefaultPlus is a 3 unit plus sign with a 1.5 stroke.
func DefaultPlus() Plus {
	return Plus{Size: 3, StrokeWidth: 1.5, Color: MarkerColor}
}

// DefaultDot is a 1.5 unit dot.
func DefaultDot() Dot {
	return Dot{Radius: 1.5, Color: MarkerColor}
}

// ShapeByName returns the default shape called name, "plus" or "dot".
func ShapeByName(name string) (Shape, error) {
	switch name {
	case "", "plus":
		return DefaultPlus(), nil
	case "dot":
		return DefaultDot(), nil
	}
	return nil, fmt.Errorf("unknown marker shape %q", name)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
