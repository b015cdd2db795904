package field

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Easer moves marker i from pos toward target for one frame. dt is the time
// since the previous frame, zero on the first one.
type Easer interface {
	// Resize prepares per-marker state for n markers. It is a no-op when the
	// size did not change.
	Resize(n int)
	Step(i int, pos, target Vec2, dt time.Duration) Vec2
}

// Resetter is implemented by easers holding per-marker state that must be
// dropped when the field is rebuilt, even to the same marker count.
type Resetter interface {
	Reset()
}

// Approach moves cur a fraction k of the way to target.
func Approach(cur, target, k float64) float64 {
	return cur + (target-cur)*k
}

// Fixed closes a constant fraction of the gap every call, regardless of how
// much time went by. Apparent speed follows the frame rate.
type Fixed struct {
	Factor float64
}

func (Fixed) Resize(int) {}

func (e Fixed) Step(_ int, pos, target Vec2, _ time.Duration) Vec2 {
	return Vec2{Approach(pos.X, target.X, e.Factor), Approach(pos.Y, target.Y, e.Factor)}
}

// DefaultFrame is the frame interval TimeScaled is calibrated against.
const DefaultFrame = time.Second / 60

// TimeScaled behaves like Fixed at the Reference frame interval and scales the
// fraction for longer or shorter frames, so convergence takes the same wall
// time at any frame rate.
type TimeScaled struct {
	Factor    float64
	Reference time.Duration
}

func (TimeScaled) Resize(int) {}

func (e TimeScaled) Step(_ int, pos, target Vec2, dt time.Duration) Vec2 {
	if dt <= 0 {
		return pos
	}
	ref := e.Reference
	if ref <= 0 {
		ref = DefaultFrame
	}
	k := 1 - math.Pow(1-e.Factor, float64(dt)/float64(ref))
	return Vec2{Approach(pos.X, target.X, k), Approach(pos.Y, target.Y, k)}
}

// Spring drives markers with a damped spring instead of plain easing. Under
// damped settings the markers overshoot and wobble back.
type Spring struct {
	spring harmonica.Spring
	vel    []Vec2
}

// NewSpring builds a spring stepped at fps with the given angular frequency
// and damping ratio.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Reset drops every marker velocity.
func (s *Spring) Reset() { s.vel = nil }

func (s *Spring) Resize(n int) {
	if len(s.vel) == n {
		return
	}
	s.vel = make([]Vec2, n)
}

func (s *Spring) Step(i int, pos, target Vec2, _ time.Duration) Vec2 {
	v := s.vel[i]
	pos.X, v.X = s.spring.Update(pos.X, v.X, target.X)
	pos.Y, v.Y = s.spring.Update(pos.Y, v.Y, target.Y)
	s.vel[i] = v
	return pos
}

// EaserByName returns the easer a host selects by name: "fixed" (the
// default), "timescaled", "spring" or "physics". fps is the host frame rate
// the spring is tuned for.
func EaserByName(name string, cfg Config, fps int) (Easer, error) {
	switch name {
	case "", "fixed":
		return Fixed{Factor: cfg.EaseFactor}, nil
	case "timescaled":
		return TimeScaled{Factor: cfg.EaseFactor, Reference: DefaultFrame}, nil
	case "spring":
		return NewSpring(fps, 6, 0.5), nil
	case "physics":
		return NewPhysics(2, 1, 3), nil
	}
	return nil, fmt.Errorf("unknown easing %q", name)
}
