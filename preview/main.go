// preview opens a desktop window showing the repelling grid. The cursor is
// the pointer; moving it out of the window releases the markers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stdiopt/repelgrid/field"
)

// debug font cell size of ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

var background, _ = colorful.Hex("#111111")

var glowColor, _ = colorful.Hex("#7fd4ff")

// heading is a debug text line that carries a glow.
type heading struct {
	text   string
	box    field.Rect
	shadow field.Shadow
}

func (h *heading) Rect() field.Rect { return h.box }

func (h *heading) SetShadow(s field.Shadow) { h.shadow = s }

// canvas keeps marker positions for Draw; Update is the only writer.
type canvas struct {
	geom    field.Geometry
	markers []*marker
}

type marker struct{ at field.Vec2 }

func (m *marker) MoveTo(p field.Vec2) { m.at = p }

func (c *canvas) Clear() { c.markers = c.markers[:0] }

func (c *canvas) Place(at field.Vec2, g field.Geometry) field.Marker {
	c.geom = g
	m := &marker{at}
	c.markers = append(c.markers, m)
	return m
}

type game struct {
	cfg   field.Config
	shape field.Shape

	canvas   *canvas
	anim     *field.Animator
	headings []*heading

	queue field.FrameQueue
	loop  *field.Loop
	start time.Time

	width, height int
	scale         float64
	offset        field.Vec2
}

func newGame(cfg field.Config, shape field.Shape, easer field.Easer) (*game, error) {
	g := &game{
		cfg:      cfg,
		shape:    shape,
		canvas:   &canvas{},
		headings: []*heading{{text: "REPELGRID"}, {text: "move the cursor over the grid"}},
		start:    time.Now(),
	}
	f := field.Build(g.canvas, cfg, shape)
	anim, err := field.NewAnimator(f, cfg)
	if err != nil {
		return nil, err
	}
	anim.Easer = easer
	for _, h := range g.headings {
		anim.Watch(h)
	}
	g.anim = anim
	g.loop = field.NewLoop(&g.queue, anim.Frame)
	return g, nil
}

// ctm maps logical units to window pixels, the view box is letterboxed.
func (g *game) ctm() (field.Affine, error) {
	if g.scale == 0 {
		return field.Affine{}, field.ErrNoTransform
	}
	return field.ScaleTranslate(g.scale, g.scale, g.offset.X, g.offset.Y), nil
}

// relayout places the headings in the middle of the window and refreshes
// the cached boxes, as a browser resize would.
func (g *game) relayout() {
	y := float64(g.height)/2 - glyphH*2
	for i, h := range g.headings {
		w := float64(len(h.text) * glyphW)
		h.box = field.Rect{X: (float64(g.width) - w) / 2, Y: y + float64(i)*glyphH*2, Width: w, Height: glyphH}
	}
	g.anim.Relayout()
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.width || my >= g.height || !ebiten.IsFocused() {
		if g.anim.Pointer().Active() {
			g.anim.PointerLeave()
		}
	} else {
		g.anim.PointerMove(field.CTMMapper(g.ctm), field.Vec2{X: float64(mx), Y: float64(my)})
	}
	g.queue.Fire(time.Since(g.start))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	geo := g.canvas.geom
	s := float32(g.scale)
	for _, m := range g.canvas.markers {
		x := float32(m.at.X*g.scale + g.offset.X)
		y := float32(m.at.Y*g.scale + g.offset.Y)
		for _, seg := range geo.Segments {
			vector.StrokeLine(screen,
				x+float32(seg.From.X)*s, y+float32(seg.From.Y)*s,
				x+float32(seg.To.X)*s, y+float32(seg.To.Y)*s,
				float32(geo.StrokeWidth)*s, geo.Color, true)
		}
		if geo.Radius > 0 {
			vector.DrawFilledCircle(screen, x, y, float32(geo.Radius)*s, geo.Color, true)
		}
	}

	for _, h := range g.headings {
		if !h.shadow.None() {
			c := h.box.Center()
			for _, layer := range []struct {
				radius float64
				alpha  float64
			}{{h.shadow.Outer, 0.15}, {h.shadow.Inner, 0.3}} {
				tint := background.BlendLab(glowColor, layer.alpha).Clamped()
				vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y),
					float32(h.box.Width/2+layer.radius), tint, true)
			}
		}
		ebitenutil.DebugPrintAt(screen, h.text, int(h.box.X), int(h.box.Y))
	}

	p := g.anim.Pointer()
	status := fmt.Sprintf("FPS %.0f  pointer off", ebiten.ActualFPS())
	if p.Active() {
		status = fmt.Sprintf("FPS %.0f  pointer %.0f,%.0f", ebiten.ActualFPS(), p.Logical.X, p.Logical.Y)
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.height-glyphH)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scale = math.Min(float64(g.width), float64(g.height)) / g.cfg.ViewBoxSize
		side := g.cfg.ViewBoxSize * g.scale
		g.offset = field.Vec2{X: (float64(g.width) - side) / 2, Y: (float64(g.height) - side) / 2}
		g.relayout()
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	shape, err := field.ShapeByName(*shapeFlag)
	if err != nil {
		log.Fatal(err)
	}
	cfg := field.ConfigFor(*shapeFlag)
	if *falloffFlag != "" {
		cfg.GlowFalloff = *falloffFlag
	}
	easer, err := field.EaserByName(*easeFlag, cfg, ebiten.DefaultTPS)
	if err != nil {
		log.Fatal(err)
	}
	g, err := newGame(cfg, shape, easer)
	if err != nil {
		log.Fatal(err)
	}
	g.loop.Start()

	ebiten.SetWindowSize(*sizeFlag, *sizeFlag)
	ebiten.SetWindowTitle("repelgrid preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
