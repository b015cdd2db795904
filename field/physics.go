package field

import (
	"math"
	"time"

	"github.com/ByteArena/box2d"
)

// Physics moves every marker as a box2d body pulled toward its target by a
// damped spring. Bodies with a Radius collide, so markers crowded by the
// pointer bounce off each other instead of overlapping.
type Physics struct {
	// Frequency of the pull in Hz and its damping ratio.
	Frequency, Damping float64
	// Radius of each body in logical units, 0 disables collisions.
	Radius float64

	world  *box2d.B2World
	bodies []*box2d.B2Body
}

// NewPhysics returns a physics easer. A damping ratio of 1 settles without
// overshoot.
func NewPhysics(frequency, damping, radius float64) *Physics {
	return &Physics{Frequency: frequency, Damping: damping, Radius: radius}
}

// Resize drops the world when the marker count changes, bodies are created
// again from the current positions.
func (p *Physics) Resize(n int) {
	if p.world != nil && len(p.bodies) == n {
		return
	}
	w := box2d.MakeB2World(box2d.B2Vec2{})
	p.world = &w
	p.bodies = make([]*box2d.B2Body, n)
}

// Reset drops the world, bodies are created again on the next frame.
func (p *Physics) Reset() { p.world = nil }

func (p *Physics) Step(i int, pos, target Vec2, dt time.Duration) Vec2 {
	if i == 0 {
		if dt <= 0 {
			dt = DefaultFrame
		}
		p.world.Step(dt.Seconds(), 8, 3)
	}
	body := p.bodies[i]
	if body == nil {
		body = p.body(pos)
		p.bodies[i] = body
	}
	at := body.GetPosition()
	cur := Vec2{at.X, at.Y}

	omega := 2 * math.Pi * p.Frequency
	pull := target.Sub(cur).Scale(omega * omega * body.GetMass())
	body.ApplyForceToCenter(box2d.B2Vec2{X: pull.X, Y: pull.Y}, true)
	return cur
}

func (p *Physics) body(at Vec2) *box2d.B2Body {
	omega := 2 * math.Pi * p.Frequency
	body := p.world.CreateBody(&box2d.B2BodyDef{
		Type:          box2d.B2BodyType.B2_dynamicBody,
		Position:      box2d.B2Vec2{X: at.X, Y: at.Y},
		Awake:         true,
		Active:        true,
		FixedRotation: true,
		LinearDamping: 2 * p.Damping * omega,
	})
	if p.Radius > 0 {
		shape := box2d.NewB2CircleShape()
		shape.M_radius = p.Radius
		ft := body.CreateFixture(shape, 1)
		ft.M_friction = 0
		ft.M_restitution = 0.5
	}
	return body
}
