// Package snapshot renders a field frame outside the browser, as SVG markup
// ready to inline in a page or as a raster image.
package snapshot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/stdiopt/repelgrid/field"
)

// SVGOptions controls the markup written by SVG.
type SVGOptions struct {
	// Width and Height of the element, in CSS pixels. Zero uses the view box.
	Width, Height int
	// ID of the <svg> and of the marker container.
	ID, ContainerID string
	// Headings are written as <text> after the markers, each with its current
	// glow as a text-shadow. Their boxes are read in view box units.
	Headings  []*Heading
	GlowColor string
}

// SVG writes the current marker positions of f as an SVG document. The
// markup matches what the browser host builds, so the output can be served
// as the page's initial state.
func SVG(w io.Writer, f *field.Field, shape field.Shape, cfg field.Config, opt SVGOptions) {
	vb := int(math.Ceil(cfg.ViewBoxSize))
	width, height := opt.Width, opt.Height
	if width == 0 {
		width = vb
	}
	if height == 0 {
		height = vb
	}
	if opt.ContainerID == "" {
		opt.ContainerID = "dot-container"
	}
	if opt.GlowColor == "" {
		opt.GlowColor = GlowColor.Hex()
	}

	attrs := []string{fmt.Sprintf(`viewBox="0 0 %d %d"`, vb, vb)}
	if opt.ID != "" {
		attrs = append(attrs, `id="`+opt.ID+`"`)
	}
	canvas := svg.New(w)
	canvas.Start(width, height, attrs...)
	canvas.Gid(opt.ContainerID)
	g := shape.Geometry()
	for i := 0; i < f.Len(); i++ {
		marker(canvas, f.Position(i).Round2(), g)
	}
	canvas.Gend()

	for _, h := range opt.Headings {
		b := h.Baseline()
		style := fmt.Sprintf("font-size:%gpx;font-family:sans-serif;fill:#e0e0e0", h.Size)
		if css := h.Shadow.CSS(opt.GlowColor); css != "" {
			style += ";text-shadow:" + css
		}
		canvas.Text(int(math.Round(b.X)), int(math.Round(b.Y)), h.Text, style)
	}
	canvas.End()
}

func marker(canvas *svg.SVG, at field.Vec2, g field.Geometry) {
	canvas.Group(`class="interactive-group"`, `transform="`+at.Translate()+`"`)
	for _, s := range g.Segments {
		canvas.Line(
			int(math.Round(s.From.X)), int(math.Round(s.From.Y)),
			int(math.Round(s.To.X)), int(math.Round(s.To.Y)),
			fmt.Sprintf("stroke:%s;stroke-width:%g", g.Color.Hex(), g.StrokeWidth),
		)
	}
	if g.Radius > 0 {
		// svgo only takes integer radii, scale a unit circle instead.
		canvas.Group(fmt.Sprintf(`transform="scale(%g)"`, g.Radius))
		canvas.Circle(0, 0, 1, "fill:"+g.Color.Hex())
		canvas.Gend()
	}
	canvas.Gend()
}
