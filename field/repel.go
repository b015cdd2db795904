package field

import "math"

// RepelFraction is the linear falloff (radius-d)/radius, zero from radius on.
func RepelFraction(d, radius float64) float64 {
	if !(d < radius) {
		return 0
	}
	return (radius - d) / radius
}

// RepelTarget returns where a marker anchored at a should head with the
// pointer at p. Within one unit of the pointer the bearing is unreliable and
// the marker stays home.
func RepelTarget(a, p Vec2, radius, strength float64) Vec2 {
	dx := a.X - p.X
	dy := a.Y - p.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if !(d > 1 && d < radius) {
		return a
	}
	f := RepelFraction(d, radius)
	angle := math.Atan2(dy, dx)
	return Vec2{
		a.X + math.Cos(angle)*f*strength,
		a.Y + math.Sin(angle)*f*strength,
	}
}
