//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	"github.com/stdiopt/repelgrid/field"
)

const svgNS = "http://www.w3.org/2000/svg"

// svgSurface puts one <g class="interactive-group"> per marker in the
// container.
type svgSurface struct {
	doc       js.Value
	container js.Value
}

func (s *svgSurface) Clear() {
	s.container.Set("innerHTML", "")
}

func (s *svgSurface) Place(at field.Vec2, g field.Geometry) field.Marker {
	group := s.doc.Call("createElementNS", svgNS, "g")
	group.Call("setAttribute", "class", "interactive-group")

	color := g.Color.Hex()
	for _, seg := range g.Segments {
		line := s.doc.Call("createElementNS", svgNS, "line")
		line.Call("setAttribute", "x1", seg.From.X)
		line.Call("setAttribute", "y1", seg.From.Y)
		line.Call("setAttribute", "x2", seg.To.X)
		line.Call("setAttribute", "y2", seg.To.Y)
		line.Call("setAttribute", "stroke", color)
		line.Call("setAttribute", "stroke-width", g.StrokeWidth)
		group.Call("appendChild", line)
	}
	if g.Radius > 0 {
		circle := s.doc.Call("createElementNS", svgNS, "circle")
		circle.Call("setAttribute", "cx", 0)
		circle.Call("setAttribute", "cy", 0)
		circle.Call("setAttribute", "r", g.Radius)
		circle.Call("setAttribute", "fill", color)
		group.Call("appendChild", circle)
	}

	m := &svgMarker{el: group}
	m.MoveTo(at)
	s.container.Call("appendChild", group)
	return m
}

type svgMarker struct {
	el   js.Value
	last string
}

// MoveTo skips the DOM write when the rounded position did not change.
func (m *svgMarker) MoveTo(p field.Vec2) {
	t := p.Translate()
	if t == m.last {
		return
	}
	m.last = t
	m.el.Call("setAttribute", "transform", t)
}

// textGlow applies glow as a CSS text-shadow.
type textGlow struct {
	el   js.Value
	last string
}

func (t *textGlow) Rect() field.Rect {
	r := t.el.Call("getBoundingClientRect")
	return field.Rect{
		X:      r.Get("left").Float(),
		Y:      r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (t *textGlow) SetShadow(s field.Shadow) {
	css := s.CSS(glowColor)
	if css == t.last {
		return
	}
	t.last = css
	t.el.Get("style").Set("textShadow", css)
}

// rafScheduler hands frames out through requestAnimationFrame, reusing one
// callback for every request.
type rafScheduler struct {
	cb   js.Func
	next func(time.Duration)
}

func newRAFScheduler() *rafScheduler {
	s := &rafScheduler{}
	s.cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn := s.next
		s.next = nil
		if fn != nil {
			ms := args[0].Float()
			fn(time.Duration(ms * float64(time.Millisecond)))
		}
		return nil
	})
	return s
}

func (s *rafScheduler) RequestFrame(fn func(now time.Duration)) func() {
	s.next = fn
	id := js.Global().Call("requestAnimationFrame", s.cb)
	return func() {
		js.Global().Call("cancelAnimationFrame", id)
		s.next = nil
	}
}

func (s *rafScheduler) Release() { s.cb.Release() }
