package snapshot

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stdiopt/repelgrid/field"
)

// GlowColor is the halo tint used when a page does not define --glow-color.
var GlowColor, _ = colorful.Hex("#7fd4ff")

// Heading is a line of text placed in screen space. It is a field.Element:
// an Animator measures it and stores the glow it should carry.
type Heading struct {
	Text string
	Size float64
	Box  field.Rect

	Shadow field.Shadow
}

func (h *Heading) Rect() field.Rect { return h.Box }

func (h *Heading) SetShadow(s field.Shadow) { h.Shadow = s }

// Baseline returns where the text is drawn from, the bottom-left of Box.
func (h *Heading) Baseline() field.Vec2 {
	return field.Vec2{X: h.Box.X, Y: h.Box.Y + h.Box.Height}
}
