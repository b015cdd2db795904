package field

import (
	"math"
	"testing"
	"time"
)

func TestFixedIsContraction(t *testing.T) {
	const k = 0.18
	e := Fixed{Factor: k}
	target := Vec2{100, -40}
	pos := Vec2{0, 0}
	prevErr := pos.Dist(target)
	for n := 0; n < 20; n++ {
		pos = e.Step(0, pos, target, DefaultFrame)
		err := pos.Dist(target)
		assertNear(t, "error ratio", err/prevErr, 1-k, 1e-9)
		prevErr = err
	}
}

func TestFixedConvergenceBound(t *testing.T) {
	const k = 0.18
	e := Fixed{Factor: k}
	target := Vec2{100, 0}
	pos := Vec2{0, 0}
	initial := pos.Dist(target)
	steps := int(math.Ceil(math.Log(0.01/initial) / math.Log(1-k)))
	for n := 0; n < steps; n++ {
		pos = e.Step(0, pos, target, 0)
	}
	if d := pos.Dist(target); d > 0.01 {
		t.Errorf("after %d steps error = %v, want <= 0.01", steps, d)
	}
}

func TestFixedIgnoresFrameTime(t *testing.T) {
	e := Fixed{Factor: 0.5}
	a := e.Step(0, Vec2{}, Vec2{10, 10}, time.Millisecond)
	b := e.Step(0, Vec2{}, Vec2{10, 10}, time.Second)
	if a != b {
		t.Errorf("fixed easing depends on dt: %+v vs %+v", a, b)
	}
}

func TestTimeScaledMatchesFixedAtReference(t *testing.T) {
	fixed := Fixed{Factor: 0.18}
	scaled := TimeScaled{Factor: 0.18}
	target := Vec2{50, 25}

	one := scaled.Step(0, Vec2{}, target, DefaultFrame)
	assertVec(t, "one frame", one, fixed.Step(0, Vec2{}, target, 0), 1e-9)

	two := scaled.Step(0, Vec2{}, target, 2*DefaultFrame)
	want := fixed.Step(0, fixed.Step(0, Vec2{}, target, 0), target, 0)
	assertVec(t, "double frame", two, want, 1e-9)

	if got := scaled.Step(0, Vec2{3, 4}, target, 0); got != (Vec2{3, 4}) {
		t.Errorf("zero dt moved to %+v", got)
	}
}

func TestSpringSettles(t *testing.T) {
	s := NewSpring(60, 6, 1)
	s.Resize(2)
	target := Vec2{10, -10}
	var pos [2]Vec2
	for n := 0; n < 600; n++ {
		for i := range pos {
			pos[i] = s.Step(i, pos[i], target, DefaultFrame)
		}
	}
	for i := range pos {
		assertVec(t, "settled", pos[i], target, 0.01)
	}
}

func TestSpringResizeKeepsVelocity(t *testing.T) {
	s := NewSpring(60, 6, 0.2)
	s.Resize(1)
	s.Step(0, Vec2{}, Vec2{10, 0}, DefaultFrame)
	v := s.vel[0]
	s.Resize(1)
	if s.vel[0] != v {
		t.Error("Resize with the same size reset velocities")
	}
}

func TestPhysicsSettlesOnTarget(t *testing.T) {
	e := NewPhysics(2, 1, 0)
	e.Resize(1)
	target := Vec2{20, 0}
	pos := Vec2{0, 0}
	for n := 0; n < 180; n++ {
		pos = e.Step(0, pos, target, DefaultFrame)
	}
	assertVec(t, "settled", pos, target, 0.5)
}

func TestPhysicsBodiesCollide(t *testing.T) {
	e := NewPhysics(2, 1, 10)
	e.Resize(2)
	a, b := Vec2{0, 0}, Vec2{50, 0}
	meet := Vec2{25, 0}
	for n := 0; n < 300; n++ {
		a = e.Step(0, a, meet, DefaultFrame)
		b = e.Step(1, b, meet, DefaultFrame)
	}
	if d := a.Dist(b); d < 19 {
		t.Errorf("bodies overlap, distance %v", d)
	}
}

func TestPhysicsResizeRebuildsWorld(t *testing.T) {
	e := NewPhysics(2, 1, 0)
	e.Resize(3)
	e.Step(0, Vec2{1, 1}, Vec2{1, 1}, DefaultFrame)
	w := e.world
	e.Resize(3)
	if e.world != w {
		t.Error("same count should keep the world")
	}
	e.Resize(4)
	if e.world == w || len(e.bodies) != 4 {
		t.Error("new count should rebuild the world")
	}
}

func TestEaserByName(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range []string{"", "fixed", "timescaled", "spring", "physics"} {
		e, err := EaserByName(name, cfg, 60)
		if err != nil || e == nil {
			t.Errorf("EaserByName(%q) = %v, %v", name, e, err)
		}
	}
	if e, _ := EaserByName("fixed", cfg, 60); e != (Fixed{Factor: cfg.EaseFactor}) {
		t.Errorf("fixed easer = %+v", e)
	}
	if _, err := EaserByName("bouncy", cfg, 60); err == nil {
		t.Error("unknown easing should fail")
	}
}
