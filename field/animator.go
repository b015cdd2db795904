package field

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Animator is the per-frame state shared by pointer handlers and the frame
// callback: the field, the pointer and the glowing elements.
type Animator struct {
	// Easer moves the markers. Nil means Fixed with the configured EaseFactor.
	Easer Easer

	cfg     Config
	falloff ease.TweenFunc
	field   *Field
	pointer Pointer
	scroll  Vec2
	glows   []*Glow
	frames  uint64

	// generation of the field the easer state belongs to.
	generation uint64
}

// NewAnimator animates f with cfg.
func NewAnimator(f *Field, cfg Config) (*Animator, error) {
	a := &Animator{field: f, pointer: NewPointer()}
	if err := a.SetConfig(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Config returns the active configuration.
func (a *Animator) Config() Config { return a.cfg }

// SetConfig swaps the tuning used from the next frame on. Lattice settings
// only take effect once the field is rebuilt.
func (a *Animator) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	falloff, err := Falloff(cfg.GlowFalloff)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.falloff = falloff
	if cfg.GlowFalloff == "" || cfg.GlowFalloff == "inQuad" {
		// gween curves are float32; the default quadratic stays exact.
		a.falloff = nil
	}
	return nil
}

// Field returns the animated field.
func (a *Animator) Field() *Field { return a.field }

// Watch registers elements to glow and measures them. Nil elements are
// skipped, pages do not have to carry every heading.
func (a *Animator) Watch(els ...Element) {
	for _, el := range els {
		if el == nil {
			continue
		}
		g := NewGlow(el)
		g.Refresh()
		a.glows = append(a.glows, g)
	}
}

// Glows returns the watched elements' glow state.
func (a *Animator) Glows() []*Glow { return a.glows }

// Relayout re-measures every watched element, on resize.
func (a *Animator) Relayout() {
	for _, g := range a.glows {
		g.Refresh()
	}
}

// PointerMove records a pointer position given in screen space.
func (a *Animator) PointerMove(m Mapper, screen Vec2) {
	a.pointer.Move(m, screen)
}

// PointerLeave parks the pointer off canvas.
func (a *Animator) PointerLeave() {
	a.pointer.Leave()
}

// Pointer returns the current pointer state.
func (a *Animator) Pointer() Pointer { return a.pointer }

// SetScroll records the page scroll offset used by the glow distance.
func (a *Animator) SetScroll(v Vec2) { a.scroll = v }

// Frames returns how many frames ran.
func (a *Animator) Frames() uint64 { return a.frames }

// Frame advances the animation by one display frame.
func (a *Animator) Frame(dt time.Duration) {
	a.frames++
	e := a.Easer
	if e == nil {
		e = Fixed{Factor: a.cfg.EaseFactor}
	}
	f := a.field
	if g := f.Generation(); g != a.generation {
		if r, ok := e.(Resetter); ok {
			r.Reset()
		}
		a.generation = g
	}
	e.Resize(f.Len())

	p := a.pointer.Logical
	for i, anchor := range f.anchors {
		target := RepelTarget(anchor, p, a.cfg.RepelRadius, a.cfg.RepelStrength)
		pos := e.Step(i, f.positions[i], target, dt)
		f.positions[i] = pos
		f.markers[i].MoveTo(pos.Round2())
	}

	for _, g := range a.glows {
		g.Step(a.pointer.Screen, a.scroll, a.cfg, a.falloff)
	}
}
