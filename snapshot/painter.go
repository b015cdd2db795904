package snapshot

import (
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stdiopt/repelgrid/field"
	"golang.org/x/image/font/gofont/goregular"
)

// Background is the page colour the raster is cleared to.
var Background, _ = colorful.Hex("#111111")

// Painter rasterizes field frames. Markers are given in logical units and
// scaled by Scale; headings are in pixels.
type Painter struct {
	Scale float64

	image *image.RGBA
	ctx   *draw2dimg.GraphicContext
	font  *truetype.Font
}

// NewPainter returns a painter for a width x height image showing a
// viewBox x viewBox logical extent.
func NewPainter(width, height int, viewBox float64) (*Painter, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	p := &Painter{
		Scale: math.Min(float64(width), float64(height)) / viewBox,
		image: image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  font,
	}

	fontData := draw2d.FontData{
		Name:   defaultFont,
		Family: draw2d.FontFamilySans,
		Style:  draw2d.FontStyleNormal,
	}
	fontCache := FontCache{}
	fontCache.Store(fontData, font)

	p.ctx = draw2dimg.NewGraphicContext(p.image)
	p.ctx.FontCache = fontCache
	p.ctx.SetFontData(fontData)
	return p, nil
}

// Image returns the backing image.
func (p *Painter) Image() *image.RGBA { return p.image }

// CTM is the logical to pixel transform of this painter, for field.CTMMapper.
func (p *Painter) CTM() (field.Affine, error) {
	return field.ScaleTranslate(p.Scale, p.Scale, 0, 0), nil
}

// Clear fills the whole image with bg.
func (p *Painter) Clear(bg color.Color) {
	b := p.image.Bounds()
	c := p.ctx
	c.SetFillColor(bg)
	c.BeginPath()
	draw2dkit.Rectangle(c, 0, 0, float64(b.Dx()), float64(b.Dy()))
	c.Fill()
}

// Marker draws g centered at the logical position at.
func (p *Painter) Marker(at field.Vec2, g field.Geometry) {
	c := p.ctx
	s := p.Scale
	cx, cy := at.X*s, at.Y*s
	if len(g.Segments) > 0 {
		c.SetStrokeColor(g.Color)
		c.SetLineWidth(g.StrokeWidth * s)
		for _, seg := range g.Segments {
			c.BeginPath()
			c.MoveTo(cx+seg.From.X*s, cy+seg.From.Y*s)
			c.LineTo(cx+seg.To.X*s, cy+seg.To.Y*s)
			c.Stroke()
		}
	}
	if g.Radius > 0 {
		c.SetFillColor(g.Color)
		c.BeginPath()
		draw2dkit.Circle(c, cx, cy, g.Radius*s)
		c.Fill()
	}
}

// Layout measures text at size and returns a heading centered on center.
func (p *Painter) Layout(text string, size float64, center field.Vec2) *Heading {
	c := p.ctx
	c.SetFont(p.font)
	c.SetFontSize(size)
	left, top, right, bottom := c.GetStringBounds(text)
	w, h := right-left, bottom-top
	return &Heading{
		Text: text,
		Size: size,
		Box:  field.Rect{X: center.X - w/2, Y: center.Y - h/2, Width: w, Height: h},
	}
}

// Heading draws h with its current glow, approximating a CSS text-shadow
// with rings of faint copies of the text.
func (p *Painter) Heading(h *Heading, glow colorful.Color) {
	c := p.ctx
	c.SetFont(p.font)
	c.SetFontSize(h.Size)
	at := h.Baseline()

	if !h.Shadow.None() {
		r, g, b := glow.RGB255()
		for _, layer := range []float64{h.Shadow.Outer, h.Shadow.Inner} {
			c.SetFillColor(color.NRGBA{r, g, b, 24})
			const rays = 12
			for i := 0; i < rays; i++ {
				a := 2 * math.Pi * float64(i) / rays
				c.FillStringAt(h.Text, at.X+math.Cos(a)*layer/2, at.Y+math.Sin(a)*layer/2)
			}
		}
	}
	c.SetFillColor(color.NRGBA{0xe0, 0xe0, 0xe0, 0xff})
	c.FillStringAt(h.Text, at.X, at.Y)
}

// Frame clears the image and draws every marker of f plus the headings.
func (p *Painter) Frame(f *field.Field, shape field.Shape, headings []*Heading, glow colorful.Color) {
	p.Clear(Background)
	g := shape.Geometry()
	for i := 0; i < f.Len(); i++ {
		p.Marker(f.Position(i).Round2(), g)
	}
	for _, h := range headings {
		p.Heading(h, glow)
	}
}
