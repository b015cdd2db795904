package field

import (
	"math"
	"testing"
)

func newTestAnimator(t *testing.T) (*Animator, *recSurface) {
	t.Helper()
	s := &recSurface{}
	cfg := DefaultConfig()
	a, err := NewAnimator(Build(s, cfg, DefaultPlus()), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return a, s
}

var identityMapper = CTMMapper(func() (Affine, error) { return Identity, nil })

func TestFrameWithoutPointerKeepsAnchors(t *testing.T) {
	a, s := newTestAnimator(t)
	for n := 0; n < 10; n++ {
		a.Frame(DefaultFrame)
	}
	f := a.Field()
	for i := 0; i < f.Len(); i++ {
		if f.Position(i) != f.Anchor(i) {
			t.Fatalf("marker %d drifted to %+v", i, f.Position(i))
		}
		if s.markers[i].at != f.Anchor(i) {
			t.Fatalf("marker %d rendered at %+v", i, s.markers[i].at)
		}
		if s.markers[i].moves != 10 {
			t.Fatalf("marker %d moved %d times, want 10", i, s.markers[i].moves)
		}
	}
	if a.Frames() != 10 {
		t.Errorf("Frames = %d", a.Frames())
	}
}

func TestFrameRepelsNearbyMarkers(t *testing.T) {
	a, s := newTestAnimator(t)
	cfg := a.Config()
	f := a.Field()

	// Anchor 0 is (22.5, 22.5); park the pointer 50 units to its right.
	a.PointerMove(identityMapper, Vec2{72.5, 22.5})
	a.Frame(DefaultFrame)

	target := 22.5 - cfg.RepelStrength*(cfg.RepelRadius-50)/cfg.RepelRadius
	wantX := 22.5 + (target-22.5)*cfg.EaseFactor
	assertNear(t, "x after one frame", f.Position(0).X, wantX, 1e-9)
	assertNear(t, "y after one frame", f.Position(0).Y, 22.5, 1e-9)
	assertNear(t, "rendered x", s.markers[0].at.X, math.Floor(wantX*100+0.5)/100, 1e-9)

	for n := 0; n < 200; n++ {
		a.Frame(DefaultFrame)
	}
	assertNear(t, "converged x", f.Position(0).X, target, 0.01)

	// Markers far from the pointer never move.
	far := f.Len() - 1
	if f.Position(far) != f.Anchor(far) {
		t.Errorf("far marker moved to %+v", f.Position(far))
	}
}

func TestPointerLeaveReleasesMarkers(t *testing.T) {
	a, _ := newTestAnimator(t)
	f := a.Field()

	a.PointerMove(identityMapper, Vec2{500, 500})
	for n := 0; n < 30; n++ {
		a.Frame(DefaultFrame)
	}
	moved := 0
	for i := 0; i < f.Len(); i++ {
		if f.Displacement(i).Len() > 1 {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("no marker reacted to the pointer")
	}

	a.PointerLeave()
	if a.Pointer().Logical != Offscreen {
		t.Fatalf("pointer after leave = %+v", a.Pointer())
	}
	for n := 0; n < 100; n++ {
		a.Frame(DefaultFrame)
	}
	for i := 0; i < f.Len(); i++ {
		if d := f.Displacement(i).Len(); d > 0.01 {
			t.Fatalf("marker %d still %v away from its anchor", i, d)
		}
	}
}

func TestFrameUnmappablePointerDisablesRepulsion(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.PointerMove(panicMapper{}, Vec2{500, 500})
	a.Frame(DefaultFrame)
	f := a.Field()
	for i := 0; i < f.Len(); i++ {
		if f.Position(i) != f.Anchor(i) {
			t.Fatalf("marker %d moved with an unmapped pointer", i)
		}
	}
}

func TestFrameDrivesGlow(t *testing.T) {
	a, _ := newTestAnimator(t)
	heading := &recElement{rect: Rect{X: 400, Y: 300, Width: 200, Height: 60}}
	a.Watch(heading, nil)
	if len(a.Glows()) != 1 {
		t.Fatalf("glows = %d, want 1", len(a.Glows()))
	}

	a.PointerMove(identityMapper, heading.rect.Center())
	a.Frame(DefaultFrame)
	if heading.shadow.None() {
		t.Fatal("heading did not glow with the pointer on it")
	}

	a.PointerLeave()
	for n := 0; n < 100; n++ {
		a.Frame(DefaultFrame)
	}
	if !heading.shadow.None() {
		t.Errorf("heading still glowing: %+v", heading.shadow)
	}
}

func TestRelayoutRemeasures(t *testing.T) {
	a, _ := newTestAnimator(t)
	el := &recElement{rect: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	a.Watch(el)

	el.rect = Rect{X: 1000, Y: 1000, Width: 10, Height: 10}
	a.PointerMove(identityMapper, Vec2{5, 5})
	a.Frame(DefaultFrame)
	if a.Glows()[0].Target == 0 {
		t.Fatal("glow should still use the cached box")
	}

	a.Relayout()
	a.Frame(DefaultFrame)
	if a.Glows()[0].Target != 0 {
		t.Errorf("target after relayout = %v, want 0", a.Glows()[0].Target)
	}
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	a, _ := newTestAnimator(t)
	bad := a.Config()
	bad.EaseFactor = 0
	if err := a.SetConfig(bad); err == nil {
		t.Fatal("SetConfig accepted easeFactor 0")
	}
	if a.Config().EaseFactor != DefaultConfig().EaseFactor {
		t.Error("rejected config was applied")
	}
}

func TestAnimatorCustomEaser(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.Easer = NewSpring(60, 8, 0.5)
	a.PointerMove(identityMapper, Vec2{72.5, 22.5})
	a.Frame(DefaultFrame)
	if a.Field().Position(0) == a.Field().Anchor(0) {
		t.Error("spring easer did not move the marker")
	}
}

func TestFrameSurvivesNonFinitePointer(t *testing.T) {
	a, _ := newTestAnimator(t)
	el := &recElement{rect: Rect{X: 400, Y: 400, Width: 200, Height: 40}}
	a.Watch(el)

	a.PointerMove(nanMapper{}, Vec2{500, 500})
	if a.Pointer().Logical != Offscreen {
		t.Fatalf("non-finite mapping kept pointer %+v", a.Pointer().Logical)
	}
	a.PointerMove(identityMapper, Vec2{math.NaN(), 500})
	if a.Pointer().Active() {
		t.Fatalf("non-finite screen position kept pointer %+v", a.Pointer())
	}

	// A NaN that still reaches the frame must not stick to any marker.
	a.pointer = Pointer{Logical: Vec2{math.NaN(), math.NaN()}, Screen: Vec2{math.NaN(), math.NaN()}}
	for n := 0; n < 10; n++ {
		a.Frame(DefaultFrame)
	}
	a.PointerLeave()
	for n := 0; n < 200; n++ {
		a.Frame(DefaultFrame)
	}
	f := a.Field()
	for i := 0; i < f.Len(); i++ {
		if p := f.Position(i); !p.Finite() || p != f.Anchor(i) {
			t.Fatalf("marker %d at %v, want its anchor %v", i, p, f.Anchor(i))
		}
	}
	if !el.shadow.None() || el.shadow.CSS("c") != "" {
		t.Errorf("shadow = %+v", el.shadow)
	}
}

func TestDefaultGlowFalloffIsExact(t *testing.T) {
	a, _ := newTestAnimator(t)
	el := &recElement{rect: Rect{X: 450, Y: 480, Width: 100, Height: 40}}
	a.Watch(el)

	a.PointerMove(identityMapper, Vec2{600, 500})
	a.Frame(DefaultFrame)
	want := (1 - 100.0/250) * (1 - 100.0/250)
	if got := a.Glows()[0].Target; got != want {
		t.Errorf("target = %v, want exactly %v", got, want)
	}
}

func TestRebuildResetsEaserState(t *testing.T) {
	s := &recSurface{}
	cfg := DefaultConfig()
	f := Build(s, cfg, DefaultPlus())
	a, err := NewAnimator(f, cfg)
	if err != nil {
		t.Fatal(err)
	}
	a.Easer = NewPhysics(2, 1, 3)
	for n := 0; n < 5; n++ {
		a.Frame(DefaultFrame)
	}

	moved := cfg
	moved.GridSpacing = 45.4
	f.Rebuild(s, moved, DefaultPlus())
	if f.Len() != 22*22 {
		t.Fatalf("rebuilt field has %d markers, want the same count", f.Len())
	}
	a.Frame(DefaultFrame)
	for i := 0; i < f.Len(); i++ {
		assertVec(t, "rebuilt marker", f.Position(i), f.Anchor(i), 1e-9)
	}
}
