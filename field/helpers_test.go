package field

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol {
		t.Errorf("%s = %+v, want %+v (±%v)", name, got, want, tol)
	}
}

// recSurface records markers so tests can inspect what a host would draw.
type recSurface struct {
	clears  int
	markers []*recMarker
}

func (s *recSurface) Clear() {
	s.clears++
	s.markers = nil
}

func (s *recSurface) Place(at Vec2, g Geometry) Marker {
	m := &recMarker{at: at, geometry: g}
	s.markers = append(s.markers, m)
	return m
}

type recMarker struct {
	at       Vec2
	geometry Geometry
	moves    int
}

func (m *recMarker) MoveTo(p Vec2) {
	m.at = p
	m.moves++
}

type recElement struct {
	rect   Rect
	shadow Shadow
	sets   int
}

func (e *recElement) Rect() Rect { return e.rect }

func (e *recElement) SetShadow(s Shadow) {
	e.shadow = s
	e.sets++
}
