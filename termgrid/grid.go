package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stdiopt/repelgrid/field"
)

// Cells are treated as cellW x cellH pixels so that screen distances, and
// with them the glow radius, keep their browser meaning.
const (
	cellW = 8
	cellH = 16
)

var (
	markerFG, _ = colorful.Hex("#5a5a5a")
	textFG, _   = colorful.Hex("#b0b0b0")
	glowFG, _   = colorful.Hex("#7fd4ff")
)

// heading is a line of text centred on a row.
type heading struct {
	text   string
	row    int
	box    field.Rect
	shadow field.Shadow
}

func (h *heading) Rect() field.Rect { return h.box }

func (h *heading) SetShadow(s field.Shadow) { h.shadow = s }

// cells records marker positions; the frame is drawn from them.
type cells struct {
	glyph   rune
	markers []*cell
}

type cell struct{ at field.Vec2 }

func (c *cell) MoveTo(p field.Vec2) { c.at = p }

func (c *cells) Clear() { c.markers = c.markers[:0] }

func (c *cells) Place(at field.Vec2, g field.Geometry) field.Marker {
	c.glyph = '+'
	if len(g.Segments) == 0 {
		c.glyph = '•'
	}
	m := &cell{at}
	c.markers = append(c.markers, m)
	return m
}

// grid owns the screen and the animation; everything runs on the goroutine
// calling run.
type grid struct {
	screen tcell.Screen
	cfg    field.Config

	cells    *cells
	anim     *field.Animator
	headings []*heading

	queue field.FrameQueue
	loop  *field.Loop
	start time.Time

	width, height int
}

func newGrid(screen tcell.Screen, cfg field.Config, shape field.Shape, titles ...string) (*grid, error) {
	g := &grid{
		screen: screen,
		cfg:    cfg,
		cells:  &cells{},
		start:  time.Now(),
	}
	f := field.Build(g.cells, cfg, shape)
	anim, err := field.NewAnimator(f, cfg)
	if err != nil {
		return nil, err
	}
	g.anim = anim
	for _, t := range titles {
		h := &heading{text: t}
		g.headings = append(g.headings, h)
		anim.Watch(h)
	}
	g.resize()
	g.loop = field.NewLoop(&g.queue, anim.Frame)
	return g, nil
}

// ctm maps logical units to cell pixels.
func (g *grid) ctm() (field.Affine, error) {
	if g.width == 0 || g.height == 0 {
		return field.Affine{}, field.ErrNoTransform
	}
	return field.ScaleTranslate(
		float64(g.width*cellW)/g.cfg.ViewBoxSize,
		float64(g.height*cellH)/g.cfg.ViewBoxSize,
		0, 0,
	), nil
}

// cellAt returns the terminal cell showing the logical point p.
func (g *grid) cellAt(p field.Vec2) (int, int) {
	x := int(p.X / g.cfg.ViewBoxSize * float64(g.width))
	y := int(p.Y / g.cfg.ViewBoxSize * float64(g.height))
	return x, y
}

func (g *grid) resize() {
	g.width, g.height = g.screen.Size()
	mid := g.height / 2
	for i, h := range g.headings {
		h.row = mid - len(g.headings) + i*2
		n := len([]rune(h.text))
		x := (g.width - n) / 2
		h.box = field.Rect{
			X:      float64(x * cellW),
			Y:      float64(h.row * cellH),
			Width:  float64(n * cellW),
			Height: cellH,
		}
	}
	g.anim.Relayout()
}

// handle applies one event and reports whether the program should go on.
func (g *grid) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			g.anim.PointerLeave()
			break
		}
		screen := field.Vec2{X: (float64(x) + 0.5) * cellW, Y: (float64(y) + 0.5) * cellH}
		g.anim.PointerMove(field.CTMMapper(g.ctm), screen)
	case *tcell.EventFocus:
		if !ev.Focused {
			g.anim.PointerLeave()
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	}
	return true
}

// tick fires a pending frame and redraws.
func (g *grid) tick(now time.Duration) {
	g.queue.Fire(now)
	g.draw()
}

func (g *grid) draw() {
	s := g.screen
	s.Clear()

	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(markerFG))
	for _, m := range g.cells.markers {
		x, y := g.cellAt(m.at)
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			continue
		}
		s.SetContent(x, y, g.cells.glyph, nil, style)
	}

	for _, h := range g.headings {
		t := 0.0
		if g.cfg.MaxGlowBlur > 0 {
			t = h.shadow.Inner / g.cfg.MaxGlowBlur
		}
		fg := textFG.BlendLab(glowFG, t).Clamped()
		st := tcell.StyleDefault.Foreground(tcell.FromImageColor(fg))
		if !h.shadow.None() {
			st = st.Bold(true)
		}
		x := int(h.box.X) / cellW
		for i, r := range []rune(h.text) {
			s.SetContent(x+i, h.row, r, nil, st)
		}
	}
	s.Show()
}

// run drives the grid at roughly 60 frames a second until a quit key.
func (g *grid) run() {
	g.loop.Start()
	defer g.loop.Stop()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.tick(time.Since(g.start))
		}
	}
}
