package field

import (
	"math"
	"strconv"
)

// Vec2 is a point or offset, in logical (canvas) or screen space depending on
// where it came from.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Round2 rounds both components to two decimals, half up.
func (v Vec2) Round2() Vec2 { return Vec2{round2(v.X), round2(v.Y)} }

// Translate formats v as an SVG transform, "translate(x, y)".
func (v Vec2) Translate() string {
	return "translate(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

// Rect is an axis aligned box in screen space, origin top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the geometric center of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// round2 matches Math.round(v*100)/100, which rounds .5 towards +Inf.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func formatFloat(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
