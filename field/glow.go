package field

import (
	"github.com/tanema/gween/ease"
)

// Shadow is the two layer glow applied around a text element. The zero value
// means no glow.
type Shadow struct {
	Inner, Outer float64
}

// None reports whether the shadow should be removed.
func (s Shadow) None() bool { return s == Shadow{} }

// CSS renders s as a text-shadow value using color for both layers, or ""
// when there is nothing to draw.
func (s Shadow) CSS(color string) string {
	if s.None() {
		return ""
	}
	return "0 0 " + formatFloat(s.Inner) + "px " + color + ", 0 0 " + formatFloat(s.Outer) + "px " + color
}

// Element is a text element that can glow.
type Element interface {
	// Rect reports the element's box in screen space.
	Rect() Rect
	SetShadow(s Shadow)
}

// GlowIntensity maps the distance d between pointer and element to a target
// intensity in [0,1]: 0 from radius on, 1 at d = 0, shaped by falloff in
// between. A nil falloff is the quadratic t*t in float64; gween curves are
// evaluated in float32.
func GlowIntensity(d, radius float64, falloff ease.TweenFunc) float64 {
	if !(d < radius) {
		return 0
	}
	t := 1 - d/radius
	if falloff == nil {
		return t * t
	}
	return float64(falloff(float32(t), 0, 1, 1))
}

// Glow tracks one element's eased intensity.
type Glow struct {
	el      Element
	rect    Rect
	hasRect bool

	Target  float64
	Current float64
}

// NewGlow wraps el. Its box is read on the first Refresh.
func NewGlow(el Element) *Glow {
	return &Glow{el: el}
}

// Refresh caches the element box again, after load or a layout change.
func (g *Glow) Refresh() {
	g.rect = g.el.Rect()
	g.hasRect = true
}

// Step eases the intensity toward the pointer driven target and applies the
// resulting shadow. scroll is the page scroll offset. Elements that were
// never measured are left alone.
func (g *Glow) Step(pointer, scroll Vec2, cfg Config, falloff ease.TweenFunc) {
	if !g.hasRect {
		return
	}
	center := g.rect.Center().Add(scroll)
	d := center.Dist(pointer.Add(scroll))
	g.Target = GlowIntensity(d, cfg.GlowRadius, falloff)
	g.Current = Approach(g.Current, g.Target, cfg.GlowEaseFactor)
	g.el.SetShadow(ShadowFor(g.Current, cfg))
}

// ShadowFor turns an intensity into a shadow, dropping blurs at or under the
// configured threshold.
func ShadowFor(intensity float64, cfg Config) Shadow {
	blur := intensity * cfg.MaxGlowBlur
	if blur <= cfg.GlowThreshold {
		return Shadow{}
	}
	return Shadow{Inner: blur, Outer: blur * cfg.GlowOuterMultiplier}
}
